package usecase

import (
	"testing"
	"time"

	"github.com/crettaz/cartable/internal/domain/agenda"
)

func mustItem(t *testing.T, raw agenda.RawRecord, today time.Time) agenda.Item {
	t.Helper()
	item, err := agenda.NewItem(raw, today)
	if err != nil {
		t.Fatalf("NewItem(%+v): %v", raw, err)
	}
	return item
}

func testToday() time.Time {
	return time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
}

func testItems(t *testing.T) []agenda.Item {
	t.Helper()
	today := testToday()
	records := []agenda.RawRecord{
		{Date: "03.03.25", Due: "08:15", Type: "dev", Sub: "Maths", Title: "Exercices"},
		{Date: "05.03.25", Due: "10:00", Type: "te", Sub: "Maths", Title: "Test algèbre"},
		{Date: "05.03.25", Due: "08:15", Type: "dev", Sub: "Français", Title: "Lecture"},
		{Date: "04.03.25", Due: "14:00", Type: "annonce", Title: "Réunion parents"},
		{Date: "06.03.25", Due: "09:00", Type: "annulé", Sub: "Sport", Title: "Cours annulé"},
		{Date: "06.03.25", Due: "09:00", Type: "autre", Sub: "Musique", Title: "Répétition"},
	}
	items := make([]agenda.Item, len(records))
	for i, r := range records {
		items[i] = mustItem(t, r, today)
	}
	return items
}

func TestBuildViewDropsPastItems(t *testing.T) {
	view := BuildView(testItems(t), FilterState{}, testToday())

	if view.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", view.Count())
	}
	for _, entry := range view.Entries {
		if entry.Item.Date.Before(testToday()) {
			t.Errorf("item dated %s appears in view but is before today", entry.Item.DateLabel)
		}
	}
}

func TestBuildViewKeepsTodayItems(t *testing.T) {
	view := BuildView(testItems(t), FilterState{}, testToday())

	found := false
	for _, entry := range view.Entries {
		if entry.Item.DateLabel == "04.03.25" {
			found = true
		}
	}
	if !found {
		t.Error("item dated today was dropped")
	}
}

func TestBuildViewCategoryFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter CategoryFilter
		want   int
	}{
		{name: "all", filter: FilterAll, want: 5},
		{name: "homework", filter: FilterHomework, want: 1},
		{name: "test", filter: FilterTest, want: 1},
		{name: "other or announcement", filter: FilterOtherOrAnnouncement, want: 2},
		{name: "cancelled", filter: FilterCancelled, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildView(testItems(t), FilterState{Category: tt.filter}, testToday())
			if view.Count() != tt.want {
				t.Errorf("Count() = %d, want %d", view.Count(), tt.want)
			}
		})
	}
}

func TestBuildViewOtherBucketKeepsBothCategories(t *testing.T) {
	view := BuildView(testItems(t), FilterState{Category: FilterOtherOrAnnouncement}, testToday())

	got := map[agenda.Category]bool{}
	for _, entry := range view.Entries {
		got[entry.Item.Category] = true
	}
	if !got[agenda.Other] || !got[agenda.Announcement] {
		t.Errorf("bucket categories = %v, want both Other and Announcement", got)
	}
}

func TestBuildViewSubjectFilter(t *testing.T) {
	view := BuildView(testItems(t), FilterState{Subject: "Maths"}, testToday())
	if view.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", view.Count())
	}
	if view.Entries[0].Item.Subject != "Maths" {
		t.Errorf("subject = %q, want Maths", view.Entries[0].Item.Subject)
	}

	// Exact match only, no normalization.
	if got := BuildView(testItems(t), FilterState{Subject: "maths"}, testToday()).Count(); got != 0 {
		t.Errorf("lowercase subject matched %d items, want 0", got)
	}
}

func TestBuildViewSortOrder(t *testing.T) {
	view := BuildView(testItems(t), FilterState{}, testToday())

	for i := 1; i < len(view.Entries); i++ {
		prev, cur := view.Entries[i-1].Item, view.Entries[i].Item
		if cur.Date.Before(prev.Date) {
			t.Fatalf("entries not sorted by date at %d", i)
		}
		if cur.Date.Equal(prev.Date) && cur.DueMinutes < prev.DueMinutes {
			t.Fatalf("entries not sorted by due time at %d", i)
		}
	}
}

func TestBuildViewSortIsStable(t *testing.T) {
	today := testToday()
	first := mustItem(t, agenda.RawRecord{Date: "05.03.25", Due: "08:00", Title: "premier"}, today)
	second := mustItem(t, agenda.RawRecord{Date: "05.03.25", Due: "08:00", Title: "second"}, today)

	view := BuildView([]agenda.Item{first, second}, FilterState{}, today)
	if view.Entries[0].Item.Title != "premier" || view.Entries[1].Item.Title != "second" {
		t.Error("equal-key items did not keep feed order")
	}
}

func TestBuildViewSeparators(t *testing.T) {
	view := BuildView(testItems(t), FilterState{}, testToday())

	var labels []string
	lastSep := ""
	for i, entry := range view.Entries {
		if entry.Separator != "" {
			if entry.Separator == lastSep {
				t.Errorf("duplicate separator %q at entry %d", entry.Separator, i)
			}
			if entry.Separator != entry.Item.DateLabel {
				t.Errorf("separator %q does not match raw label %q", entry.Separator, entry.Item.DateLabel)
			}
			labels = append(labels, entry.Separator)
			lastSep = entry.Separator
		} else if entry.Item.DateLabel != lastSep {
			t.Errorf("entry %d starts new date %q without separator", i, entry.Item.DateLabel)
		}
	}

	want := []string{"04.03.25", "05.03.25", "06.03.25"}
	if len(labels) != len(want) {
		t.Fatalf("separators = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("separator %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestViewItemAt(t *testing.T) {
	view := BuildView(testItems(t), FilterState{}, testToday())

	item, err := view.ItemAt(0)
	if err != nil {
		t.Fatalf("ItemAt(0): %v", err)
	}
	if item.Title == "" {
		t.Error("ItemAt(0) returned empty item")
	}

	if _, err := view.ItemAt(view.Count()); err == nil {
		t.Error("ItemAt out of range did not fail")
	}

	cancelled := BuildView(testItems(t), FilterState{Category: FilterCancelled}, testToday())
	if _, err := cancelled.ItemAt(0); err != ErrNotInteractive {
		t.Errorf("ItemAt on cancelled entry: err = %v, want ErrNotInteractive", err)
	}
}

func TestRevalidateSubject(t *testing.T) {
	subjects := []string{"Français", "Maths"}

	kept := RevalidateSubject(FilterState{Subject: "Maths"}, subjects)
	if kept.Subject != "Maths" {
		t.Errorf("present subject was reset to %q", kept.Subject)
	}

	reset := RevalidateSubject(FilterState{Subject: "Latin"}, subjects)
	if reset.Subject != "" {
		t.Errorf("absent subject kept as %q, want reset to all", reset.Subject)
	}

	all := RevalidateSubject(FilterState{}, nil)
	if all.Subject != "" {
		t.Errorf("all-subjects state changed to %q", all.Subject)
	}
}
