// Package agenda defines the core school agenda models.
package agenda

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category is the canonical kind of an agenda entry.
type Category int

const (
	Homework Category = iota
	Test
	Other
	Announcement
	Cancelled
)

// String returns the category identifier.
func (c Category) String() string {
	switch c {
	case Homework:
		return "homework"
	case Test:
		return "test"
	case Other:
		return "other"
	case Announcement:
		return "announcement"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Label returns the French display label for the category.
func (c Category) Label() string {
	switch c {
	case Homework:
		return "Devoir"
	case Test:
		return "Test"
	case Other:
		return "Autre"
	case Announcement:
		return "Annonce"
	case Cancelled:
		return "Annulé"
	default:
		return "Élément"
	}
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Classify maps a raw type string to its category. It is a total function:
// matching is trimmed, case-insensitive and accent-insensitive, and any
// unrecognized or empty value resolves to Other.
func Classify(rawType string) Category {
	t := strings.ToLower(strings.TrimSpace(rawType))
	if folded, _, err := transform.String(foldAccents, t); err == nil {
		t = folded
	}

	switch t {
	case "te", "test":
		return Test
	case "dev", "devoir":
		return Homework
	case "autre":
		return Other
	case "annonce":
		return Announcement
	case "annule", "annulee", "annulation":
		return Cancelled
	default:
		return Other
	}
}
