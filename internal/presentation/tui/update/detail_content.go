package update

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/domain/agenda"
	"github.com/crettaz/cartable/internal/presentation/tui/textutil"
)

// BuildDetailContent renders the detail view body for one agenda item.
func BuildDetailContent(item agenda.Item, width int) string {
	context := textutil.JoinDot(item.Subject, item.Category.Label())
	meta := textutil.JoinDot(item.DateLabel, item.Due, item.Duration)

	lines := make([]string, 0, 6)
	if context != "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(context))
	}
	if item.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(item.Title))
	}
	lines = append(lines, meta)
	if item.Text != "" {
		lines = append(lines, "", item.Text)
	}

	body := strings.Join(lines, "\n")
	if width > 0 {
		body = lipgloss.NewStyle().Width(width).Render(body)
	}
	return body
}
