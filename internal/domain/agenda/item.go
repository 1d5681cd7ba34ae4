package agenda

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Item is the canonical, immutable form of one agenda entry. It is derived
// once per load cycle and never mutated afterwards.
type Item struct {
	Category   Category
	Date       time.Time // calendar date at midnight, no time component
	DateLabel  string    // raw feed label, reproduced verbatim in separators
	Due        string
	DueMinutes int
	Duration   string
	Subject    string
	Title      string // title, falling back to subject
	Info       string // info, falling back to title
	Text       string
	Color      string
	NoClick    bool
	IsToday    bool
	IsTomorrow bool
}

// Interactive reports whether selecting the item opens its detail view.
// Cancelled entries and entries carrying the no-click marker do not open.
func (i Item) Interactive() bool {
	return i.Category != Cancelled && !i.NoClick
}

// ParseDate parses a DD.MM.YY feed date, tolerating trailing dots. The
// two-digit year maps into the 2000s. The returned time is midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimRight(s, ".")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want DD.MM.YY", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in date %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in date %q: %w", s, err)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 0 || year > 99 {
		return time.Time{}, fmt.Errorf("date %q out of range", s)
	}

	return time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// ParseDue parses an HH:MM due time into minutes since midnight.
func ParseDue(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid due time %q: want HH:MM", s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in due time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in due time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("due time %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// NewItem derives the canonical item for one raw record. The today argument
// is the reference calendar day captured at the start of the load cycle; the
// record's date is parsed in the same location.
func NewItem(raw RawRecord, today time.Time) (Item, error) {
	date, err := ParseDate(raw.Date, today.Location())
	if err != nil {
		return Item{}, err
	}
	dueMinutes, err := ParseDue(raw.Due)
	if err != nil {
		return Item{}, err
	}

	title := raw.Title
	if title == "" {
		title = raw.Sub
	}
	info := raw.Info
	if info == "" {
		info = raw.Title
	}

	return Item{
		Category:   Classify(raw.Type),
		Date:       date,
		DateLabel:  raw.Date,
		Due:        raw.Due,
		DueMinutes: dueMinutes,
		Duration:   raw.Duration,
		Subject:    raw.Sub,
		Title:      title,
		Info:       info,
		Text:       raw.Text,
		Color:      raw.Color,
		NoClick:    raw.NoClick,
		IsToday:    SameDay(date, today),
		IsTomorrow: SameDay(date, today.AddDate(0, 0, 1)),
	}, nil
}

// SameDay reports calendar-day equality (year, month, day).
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Midnight truncates t to its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
