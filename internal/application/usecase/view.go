// Package usecase contains application-level services.
package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/crettaz/cartable/internal/domain/agenda"
)

// CategoryFilter selects which categories a view shows. Other and
// Announcement are presented as one bucket even though they are distinct
// categories.
type CategoryFilter int

const (
	FilterAll CategoryFilter = iota
	FilterHomework
	FilterTest
	FilterOtherOrAnnouncement
	FilterCancelled
)

// FilterState holds the two independent filter axes for a session. The zero
// value means "everything": all categories, all subjects.
type FilterState struct {
	Category CategoryFilter
	Subject  string // empty means all subjects
}

// Entry is one row of a built view. Separator carries the raw date label when
// the entry starts a new date group.
type Entry struct {
	Separator string
	Item      agenda.Item
}

// View is the ordered, filtered, grouped result of one render cycle.
type View struct {
	Entries []Entry
	Filter  FilterState
}

// ErrNotInteractive signals that a selected entry does not open a detail view.
var ErrNotInteractive = errors.New("entry is not interactive")

// Count returns the number of items in the view.
func (v View) Count() int { return len(v.Entries) }

// ItemAt returns the canonical item at the given view position, or
// ErrNotInteractive when the entry does not open a detail view.
func (v View) ItemAt(index int) (agenda.Item, error) {
	if index < 0 || index >= len(v.Entries) {
		return agenda.Item{}, fmt.Errorf("view index %d out of range", index)
	}
	item := v.Entries[index].Item
	if !item.Interactive() {
		return item, ErrNotInteractive
	}
	return item, nil
}

// BuildView applies the filter state to the loaded items and produces the
// ordered, grouped view: items before today are dropped, the remaining items
// are filtered on both axes, sorted ascending by (date, due time) with feed
// order as tie-break, and grouped into runs sharing the same raw date label.
func BuildView(items []agenda.Item, filter FilterState, today time.Time) View {
	kept := make([]agenda.Item, 0, len(items))
	for _, item := range items {
		if item.Date.Before(today) && !agenda.SameDay(item.Date, today) {
			continue
		}
		if !matchesCategory(item.Category, filter.Category) {
			continue
		}
		if filter.Subject != "" && item.Subject != filter.Subject {
			continue
		}
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if !kept[i].Date.Equal(kept[j].Date) {
			return kept[i].Date.Before(kept[j].Date)
		}
		return kept[i].DueMinutes < kept[j].DueMinutes
	})

	entries := make([]Entry, len(kept))
	lastLabel := ""
	for i, item := range kept {
		entry := Entry{Item: item}
		if item.DateLabel != lastLabel {
			entry.Separator = item.DateLabel
			lastLabel = item.DateLabel
		}
		entries[i] = entry
	}

	return View{Entries: entries, Filter: filter}
}

func matchesCategory(c agenda.Category, f CategoryFilter) bool {
	switch f {
	case FilterAll:
		return true
	case FilterHomework:
		return c == agenda.Homework
	case FilterTest:
		return c == agenda.Test
	case FilterOtherOrAnnouncement:
		return c == agenda.Other || c == agenda.Announcement
	case FilterCancelled:
		return c == agenda.Cancelled
	default:
		return false
	}
}

// RevalidateSubject resets the subject axis to "all" when the selected
// subject is absent from the freshly loaded subject list.
func RevalidateSubject(filter FilterState, subjects []string) FilterState {
	if filter.Subject == "" {
		return filter
	}
	for _, s := range subjects {
		if s == filter.Subject {
			return filter
		}
	}
	filter.Subject = ""
	return filter
}
