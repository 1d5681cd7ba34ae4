package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/presentation/tui/components/header"
	mainview "github.com/crettaz/cartable/internal/presentation/tui/components/main"
	"github.com/crettaz/cartable/internal/presentation/tui/components/modal"
	"github.com/crettaz/cartable/internal/presentation/tui/components/sidebar"
	"github.com/crettaz/cartable/internal/presentation/tui/metrics"
	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
	"github.com/crettaz/cartable/internal/presentation/tui/state"
	"github.com/crettaz/cartable/internal/presentation/tui/textutil"
	"github.com/crettaz/cartable/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooter(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		View:   m.state.SubjectList.View(),
		Width:  m.state.SubjectList.Width(),
		Height: m.state.SubjectList.Height(),
		Title:  "Matières",
		Active: m.state.Session == state.SubjectView,
		Accent: m.settings.Theme.Accent,
	}
}

func (m *Model) buildHeaderProps() header.Props {
	if m.state.Session == state.DetailView || !m.state.HasView {
		return header.Props{}
	}

	subject := m.state.Filter.Subject
	if subject == "" {
		subject = presenter.AllSubjectsLabel
	}

	return header.Props{
		Visible: true,
		Summary: presenter.SummaryText(m.state.View.Count(), m.state.Filter.Category),
		Filter:  textutil.JoinDot(presenter.FilterName(m.state.Filter.Category), subject),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	sidebarWidth := m.state.Width / 3
	mainWidth := m.state.Width - sidebarWidth - metrics.SidebarRightBorderWidth
	return mainview.Props{
		Width:  mainWidth,
		Height: m.state.AgendaList.Height(),
		Body:   m.buildMainBody(),
	}
}

func (m *Model) buildMainBody() string {
	if m.state.Loading {
		return fmt.Sprintf("%s Chargement de l'agenda…", m.state.Spinner.View())
	}
	if m.state.Session == state.DetailView {
		return m.state.Viewport.View()
	}
	if m.state.Err != nil && !m.state.HasView {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.settings.Theme.Red)).
			Render(fmt.Sprintf("Erreur: %v", m.state.Err))
	}
	if m.state.HasView && m.state.View.Count() == 0 {
		if es, ok := presenter.EmptyStateFor(m.state.Filter.Category); ok {
			return renderEmptyState(es, m.settings.Theme.Separator)
		}
	}
	return m.state.AgendaList.View()
}

func renderEmptyState(es presenter.EmptyState, borderColor string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(es.Title),
		es.Text,
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Render(body)
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Quitter cartable ?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{}
}

func (m *Model) buildFooter() string {
	m.state.Help.Width = m.state.Width
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Loading, m.state.StatusMessage, helpText)
}
