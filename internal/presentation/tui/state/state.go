// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/crettaz/cartable/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	AgendaView Session = iota
	SubjectView
	DetailView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Left            key.Binding
	Right           key.Binding
	UpPage          key.Binding
	DownPage        key.Binding
	Top             key.Binding
	Bottom          key.Binding
	Open            key.Binding
	Back            key.Binding
	Quit            key.Binding
	Refresh         key.Binding
	Subjects        key.Binding
	FilterAll       key.Binding
	FilterHomework  key.Binding
	FilterTest      key.Binding
	FilterOther     key.Binding
	FilterCancelled key.Binding
	CycleFilter     key.Binding
	Help            key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit, k.Refresh},
		{k.FilterAll, k.FilterHomework, k.FilterTest, k.FilterOther},
		{k.FilterCancelled, k.CycleFilter, k.Subjects, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "back/matières"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "détails"),
		),
		UpPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.UpPage)...),
			key.WithHelp(cfg.UpPage, "pgup"),
		),
		DownPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.DownPage)...),
			key.WithHelp(cfg.DownPage, "pgdn"),
		),
		Top: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Top)...),
			key.WithHelp(cfg.Top, "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Bottom)...),
			key.WithHelp(cfg.Bottom, "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "ouvrir"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "retour"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quitter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "actualiser"),
		),
		Subjects: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Subjects)...),
			key.WithHelp(cfg.Subjects, "matières"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FilterAll)...),
			key.WithHelp(cfg.FilterAll, "tout"),
		),
		FilterHomework: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FilterHomework)...),
			key.WithHelp(cfg.FilterHomework, "devoirs"),
		),
		FilterTest: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FilterTest)...),
			key.WithHelp(cfg.FilterTest, "tests"),
		),
		FilterOther: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FilterOther)...),
			key.WithHelp(cfg.FilterOther, "autres"),
		),
		FilterCancelled: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FilterCancelled)...),
			key.WithHelp(cfg.FilterCancelled, "annulés"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys(splitKeys(cfg.CycleFilter)...),
			key.WithHelp(cfg.CycleFilter, "filtre suivant"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "aide"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
