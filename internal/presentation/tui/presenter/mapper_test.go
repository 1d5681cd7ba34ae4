package presenter

import (
	"testing"

	"github.com/crettaz/cartable/internal/application/usecase"
	"github.com/crettaz/cartable/internal/domain/agenda"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		name string
		item agenda.Item
		want string
	}{
		{name: "explicit override wins", item: agenda.Item{Category: agenda.Test, Color: "green"}, want: "green"},
		{name: "test is red", item: agenda.Item{Category: agenda.Test}, want: "red"},
		{name: "announcement is yellow", item: agenda.Item{Category: agenda.Announcement}, want: "yellow"},
		{name: "cancelled is neutral", item: agenda.Item{Category: agenda.Cancelled}, want: "neutral"},
		{name: "other is neutral", item: agenda.Item{Category: agenda.Other}, want: "neutral"},
		{name: "homework defaults to blue", item: agenda.Item{Category: agenda.Homework}, want: "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneFor(tt.item); got != tt.want {
				t.Errorf("ToneFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllowPulse(t *testing.T) {
	if AllowPulse(agenda.Item{Category: agenda.Cancelled, IsToday: true}) {
		t.Error("cancelled entries must never pulse")
	}
	if AllowPulse(agenda.Item{Category: agenda.Announcement, IsToday: true}) {
		t.Error("announcements must never pulse")
	}
	if !AllowPulse(agenda.Item{Category: agenda.Homework}) {
		t.Error("homework entries may pulse")
	}
	if !AllowPulse(agenda.Item{Category: agenda.Test}) {
		t.Error("test entries may pulse")
	}
}

func TestShowInfo(t *testing.T) {
	if ShowInfo(agenda.Item{Category: agenda.Cancelled}) {
		t.Error("cancelled entries must not render their info line")
	}
	if !ShowInfo(agenda.Item{Category: agenda.Homework}) {
		t.Error("homework entries render their info line")
	}
}

func TestSummaryText(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		filter usecase.CategoryFilter
		want   string
	}{
		{name: "all", count: 7, filter: usecase.FilterAll, want: "Tous les résultats"},
		{name: "other bucket ignores count", count: 0, filter: usecase.FilterOtherOrAnnouncement, want: "Autres résultats"},
		{name: "homework plural", count: 3, filter: usecase.FilterHomework, want: "3 devoirs"},
		{name: "homework singular", count: 1, filter: usecase.FilterHomework, want: "1 devoir"},
		{name: "zero is singular", count: 0, filter: usecase.FilterTest, want: "0 test"},
		{name: "cancelled plural", count: 2, filter: usecase.FilterCancelled, want: "2 annulés"},
		{name: "unknown filter falls back", count: 4, filter: usecase.CategoryFilter(99), want: "4 résultats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryText(tt.count, tt.filter); got != tt.want {
				t.Errorf("SummaryText(%d, %v) = %q, want %q", tt.count, tt.filter, got, tt.want)
			}
		})
	}
}

func TestEmptyStateFor(t *testing.T) {
	tests := []struct {
		name      string
		filter    usecase.CategoryFilter
		wantTitle string
		wantOK    bool
	}{
		{name: "homework", filter: usecase.FilterHomework, wantTitle: "Aucun devoir !", wantOK: true},
		{name: "test", filter: usecase.FilterTest, wantTitle: "Aucun test !", wantOK: true},
		{name: "cancelled", filter: usecase.FilterCancelled, wantTitle: "Tous les cours sont maintenus.", wantOK: true},
		{name: "other bucket", filter: usecase.FilterOtherOrAnnouncement, wantTitle: "Aucun événement.", wantOK: true},
		{name: "all has none", filter: usecase.FilterAll, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EmptyStateFor(tt.filter)
			if ok != tt.wantOK {
				t.Fatalf("EmptyStateFor(%v) ok = %v, want %v", tt.filter, ok, tt.wantOK)
			}
			if ok && got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}
