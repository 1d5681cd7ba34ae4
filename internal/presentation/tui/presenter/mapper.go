// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/crettaz/cartable/internal/application/usecase"
	"github.com/crettaz/cartable/internal/domain/agenda"
)

// ToneFor returns the visual tone for an item. An explicit per-record color
// override wins over the category mapping.
func ToneFor(item agenda.Item) string {
	if item.Color != "" {
		return item.Color
	}
	switch item.Category {
	case agenda.Test:
		return "red"
	case agenda.Announcement:
		return "yellow"
	case agenda.Cancelled, agenda.Other:
		return "neutral"
	default:
		return "blue"
	}
}

// AllowPulse reports whether the item may receive today/tomorrow emphasis.
// Cancelled and announcement entries never pulse, whatever their date.
func AllowPulse(item agenda.Item) bool {
	return item.Category != agenda.Cancelled && item.Category != agenda.Announcement
}

// ShowInfo reports whether the item's info line is rendered in the list.
// Cancelled entries keep the field for the detail view but never show it.
func ShowInfo(item agenda.Item) bool {
	return item.Category != agenda.Cancelled
}

// SummaryText returns the French summary line for a view.
func SummaryText(count int, filter usecase.CategoryFilter) string {
	switch filter {
	case usecase.FilterAll:
		return "Tous les résultats"
	case usecase.FilterOtherOrAnnouncement:
		return "Autres résultats"
	}

	singular, plural := "résultat", "résultats"
	switch filter {
	case usecase.FilterHomework:
		singular, plural = "devoir", "devoirs"
	case usecase.FilterTest:
		singular, plural = "test", "tests"
	case usecase.FilterCancelled:
		singular, plural = "annulé", "annulés"
	}

	label := plural
	if count <= 1 {
		label = singular
	}
	return fmt.Sprintf("%d %s", count, label)
}

// EmptyState is the canned message shown when a filtered view has no entries.
type EmptyState struct {
	Title string
	Text  string
}

// EmptyStateFor returns the empty-state message for the given filter. The
// all-categories filter has none: an empty view renders nothing.
func EmptyStateFor(filter usecase.CategoryFilter) (EmptyState, bool) {
	switch filter {
	case usecase.FilterHomework:
		return EmptyState{
			Title: "Aucun devoir !",
			Text:  "Félicitations ! Une belle journée vous attend.",
		}, true
	case usecase.FilterTest:
		return EmptyState{
			Title: "Aucun test !",
			Text:  "Rien à préparer pour l’instant.",
		}, true
	case usecase.FilterCancelled:
		return EmptyState{
			Title: "Tous les cours sont maintenus.",
			Text:  "Aucune annulation prévue.",
		}, true
	case usecase.FilterOtherOrAnnouncement:
		return EmptyState{
			Title: "Aucun événement.",
			Text:  "Aucune information complémentaire.",
		}, true
	default:
		return EmptyState{}, false
	}
}

// FilterName returns the French name of a category filter for the header.
func FilterName(filter usecase.CategoryFilter) string {
	switch filter {
	case usecase.FilterHomework:
		return "Devoirs"
	case usecase.FilterTest:
		return "Tests"
	case usecase.FilterOtherOrAnnouncement:
		return "Autres"
	case usecase.FilterCancelled:
		return "Annulés"
	default:
		return "Tout"
	}
}
