// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crettaz/cartable/internal/application/usecase"
	"github.com/crettaz/cartable/internal/presentation/tui/intent"
	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
	"github.com/crettaz/cartable/internal/presentation/tui/state"
)

// StatusFetchFailed is shown when a load cycle fails; the previous view stays.
const StatusFetchFailed = "Mise à jour impossible — affichage précédent conservé"

// Deps groups external dependencies for updates.
type Deps struct {
	Agenda   usecase.AgendaService
	Debounce time.Duration
}

// AgendaLoadedMsg is emitted after one fetch-then-classify cycle.
type AgendaLoadedMsg struct {
	Snapshot *usecase.Snapshot
	Err      error
	Seq      int
}

// RenderTickMsg fires when a scheduled, debounced render becomes due.
type RenderTickMsg struct {
	Seq int
}

// LoadAgendaCmd creates a command running one load cycle.
func LoadAgendaCmd(svc usecase.AgendaService, url string, seq int) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := svc.Load(context.Background(), url)
		return AgendaLoadedMsg{Snapshot: snapshot, Err: err, Seq: seq}
	}
}

// ScheduleRenderCmd schedules a debounced render. Scheduling again bumps the
// state's render sequence, so an older pending tick is dropped on arrival.
func ScheduleRenderCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RenderTickMsg{Seq: seq}
	})
}

// StartLoad begins a new load cycle. The sequence guard makes the latest
// request win when loads overlap; the fetch itself is never cancelled.
func StartLoad(s *state.ModelState, deps Deps) tea.Cmd {
	s.LoadSeq++
	s.Err = nil
	if s.Snapshot == nil {
		s.Loading = true
	} else {
		s.StatusMessage = "Actualisation…"
	}
	return LoadAgendaCmd(deps.Agenda, s.FeedURL, s.LoadSeq)
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Help.ShowAll {
		switch msg.String() {
		case "?", "esc", "q":
			s.Help.ShowAll = false
		}
		return nil, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Refresh:
		return StartLoad(s, deps), true
	case intent.FilterAll:
		return setCategoryFilter(s, usecase.FilterAll, deps), true
	case intent.FilterHomework:
		return setCategoryFilter(s, usecase.FilterHomework, deps), true
	case intent.FilterTest:
		return setCategoryFilter(s, usecase.FilterTest, deps), true
	case intent.FilterOther:
		return setCategoryFilter(s, usecase.FilterOtherOrAnnouncement, deps), true
	case intent.FilterCancelled:
		return setCategoryFilter(s, usecase.FilterCancelled, deps), true
	case intent.CycleFilter:
		next := (s.Filter.Category + 1) % 5
		return setCategoryFilter(s, next, deps), true
	}

	switch s.Session {
	case state.AgendaView:
		return handleAgendaViewIntent(s, parsed, deps)
	case state.SubjectView:
		return handleSubjectViewIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailViewIntent(s, parsed)
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleAgendaViewIntent(s *state.ModelState, parsed intent.Intent, _ Deps) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Open:
		openSelectedEntry(s)
		return nil, true
	case intent.Back, intent.Subjects:
		s.Session = state.SubjectView
		return nil, true
	default:
		return nil, false
	}
}

func handleSubjectViewIntent(s *state.ModelState, parsed intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Open:
		subject, ok := s.SubjectList.SelectedItem().(*presenter.Subject)
		if !ok {
			return nil, true
		}
		s.Session = state.AgendaView
		if s.Filter.Subject == subject.Name {
			return nil, true
		}
		s.Filter.Subject = subject.Name
		return StartLoad(s, deps), true
	case intent.Back:
		s.Session = state.AgendaView
		return nil, true
	default:
		return nil, false
	}
}

func handleDetailViewIntent(s *state.ModelState, parsed intent.Intent) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Back:
		s.Session = s.Previous
		return nil, true
	default:
		return nil, false
	}
}

func openSelectedEntry(s *state.ModelState) {
	entry, ok := s.AgendaList.SelectedItem().(*presenter.Entry)
	if !ok || entry.IsSeparator() {
		return
	}
	item, err := s.View.ItemAt(entry.ViewIndex)
	if err != nil {
		// Out of range or non-interactive: nothing opens.
		return
	}
	s.Previous = state.AgendaView
	s.Session = state.DetailView
	s.Viewport.SetContent(BuildDetailContent(item, s.Viewport.Width))
	s.Viewport.GotoTop()
}

func setCategoryFilter(s *state.ModelState, filter usecase.CategoryFilter, deps Deps) tea.Cmd {
	if s.Session == state.DetailView {
		s.Session = state.AgendaView
	}
	if s.Filter.Category == filter {
		return nil
	}
	s.Filter.Category = filter
	return StartLoad(s, deps)
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleAgendaLoadedMsg installs a freshly loaded snapshot and schedules the
// debounced render. Stale responses and failed loads leave the previous view
// untouched.
func HandleAgendaLoadedMsg(s *state.ModelState, msg AgendaLoadedMsg, deps Deps) tea.Cmd {
	if msg.Seq != s.LoadSeq {
		return nil
	}
	s.Loading = false

	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = StatusFetchFailed
		return nil
	}

	s.Err = nil
	s.StatusMessage = ""
	s.Snapshot = msg.Snapshot
	s.Filter = usecase.RevalidateSubject(s.Filter, msg.Snapshot.Subjects)
	presenter.ApplySubjectList(&s.SubjectList, msg.Snapshot.Subjects, s.Filter.Subject)

	s.RenderSeq++
	return ScheduleRenderCmd(s.RenderSeq, deps.Debounce)
}

// HandleRenderTick applies the pending render when it is still the latest.
func HandleRenderTick(s *state.ModelState, msg RenderTickMsg) {
	if msg.Seq != s.RenderSeq || s.Snapshot == nil {
		return
	}
	s.View = usecase.BuildView(s.Snapshot.Items, s.Filter, s.Snapshot.Today)
	s.HasView = true
	presenter.ApplyAgendaList(&s.AgendaList, s.View)
	UpdateListSizes(s)
}
