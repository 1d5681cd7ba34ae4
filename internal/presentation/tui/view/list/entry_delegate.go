// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/application/settings"
	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
	"github.com/crettaz/cartable/internal/presentation/tui/textutil"
)

// EntryDelegate handles rendering of agenda rows: date separators and items.
type EntryDelegate struct {
	Styles list.DefaultItemStyles
	Theme  settings.ThemeConfig
}

// NewEntryDelegate creates a new EntryDelegate.
func NewEntryDelegate(theme settings.ThemeConfig) *EntryDelegate {
	return &EntryDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Theme:  theme,
	}
}

// Height returns the height of the item.
func (d *EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the row.
func (d *EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(*presenter.Entry)
	if !ok {
		return
	}

	if e.IsSeparator() {
		d.renderSeparator(w, m, index, e)
		return
	}

	due := e.DueText
	if e.Duration != "" {
		due = fmt.Sprintf("%s (%s)", e.DueText, e.Duration)
	}
	line := fmt.Sprintf("%s  %s", due, e.TitleText)
	if e.InfoText != "" {
		line = fmt.Sprintf("%s — %s", line, textutil.SingleLine(e.InfoText))
	}
	line = fmt.Sprintf("%s  [%s]", line, e.BadgeText)
	switch {
	case e.Today:
		line += "  • aujourd'hui"
	case e.Tomorrow:
		line += "  • demain"
	}

	style := itemStyle(d.Styles, m, index)
	line = truncateItemText(m, style, line)

	switch {
	case e.Dimmed:
		line = lipgloss.NewStyle().Faint(true).Render(line)
	case index != m.Index():
		tone := lipgloss.Color(d.Theme.ToneColor(e.ToneName))
		line = lipgloss.NewStyle().Foreground(tone).Render(line)
	}

	renderItemText(w, style, line)
}

func (d *EntryDelegate) renderSeparator(w io.Writer, m list.Model, index int, e *presenter.Entry) {
	style := itemStyle(d.Styles, m, index)
	label := truncateItemText(m, style, fmt.Sprintf("── %s", e.SepLabel))
	if index != m.Index() {
		label = lipgloss.NewStyle().
			Foreground(lipgloss.Color(d.Theme.Separator)).
			Bold(true).
			Render(label)
	}
	renderItemText(w, style, label)
}
