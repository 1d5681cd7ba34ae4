// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/crettaz/cartable/internal/application/usecase"
)

// ModelState holds the presentation state for the TUI.
//
// Snapshot is the immutable result of the latest completed load; View is the
// last view built from it. LoadSeq and RenderSeq guard against stale fetch
// responses and stale debounced render ticks respectively.
type ModelState struct {
	Session       Session
	SubjectList   list.Model
	AgendaList    list.Model
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Loading       bool
	Keys          KeyMap
	Width         int
	Height        int
	FeedURL       string
	Snapshot      *usecase.Snapshot
	Filter        usecase.FilterState
	View          usecase.View
	HasView       bool
	Err           error
	StatusMessage string
	LoadSeq       int
	RenderSeq     int
	Previous      Session
}
