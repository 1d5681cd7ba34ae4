package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
)

// SubjectDelegate handles rendering of subject selector items.
type SubjectDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewSubjectDelegate creates a new SubjectDelegate.
func NewSubjectDelegate(themeColor lipgloss.Color) *SubjectDelegate {
	return &SubjectDelegate{
		Styles: list.NewDefaultItemStyles(),
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d SubjectDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d SubjectDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d SubjectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d SubjectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	s, ok := item.(*presenter.Subject)
	if !ok {
		return
	}

	title := s.Title()
	if index == m.Index() {
		title = d.Styles.SelectedTitle.Render(title)
	} else if s.Name != "" {
		title = d.Styles.NormalTitle.Foreground(d.Theme).Render(title)
	} else {
		title = d.Styles.NormalTitle.Render(title)
	}

	_, _ = io.WriteString(w, title)
}
