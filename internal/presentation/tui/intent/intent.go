// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crettaz/cartable/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Refresh
	Subjects
	FilterAll
	FilterHomework
	FilterTest
	FilterOther
	FilterCancelled
	CycleFilter
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Subjects):
		return Intent{Type: Subjects}
	case key.Matches(msg, keys.FilterAll):
		return Intent{Type: FilterAll}
	case key.Matches(msg, keys.FilterHomework):
		return Intent{Type: FilterHomework}
	case key.Matches(msg, keys.FilterTest):
		return Intent{Type: FilterTest}
	case key.Matches(msg, keys.FilterOther):
		return Intent{Type: FilterOther}
	case key.Matches(msg, keys.FilterCancelled):
		return Intent{Type: FilterCancelled}
	case key.Matches(msg, keys.CycleFilter):
		return Intent{Type: CycleFilter}
	default:
		return Intent{Type: None}
	}
}
