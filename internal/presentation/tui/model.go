package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crettaz/cartable/internal/application/settings"
	"github.com/crettaz/cartable/internal/application/usecase"
	"github.com/crettaz/cartable/internal/presentation/tui/presenter"
	"github.com/crettaz/cartable/internal/presentation/tui/state"
	"github.com/crettaz/cartable/internal/presentation/tui/update"
	"github.com/crettaz/cartable/internal/presentation/tui/view"
	listview "github.com/crettaz/cartable/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	agenda   usecase.AgendaService
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, agendaSvc usecase.AgendaService) *Model {
	return &Model{
		settings: cfg,
		agenda:   agendaSvc,
		state:    newModelState(cfg),
	}
}

// Init initializes the model and starts the first load cycle.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.StartLoad(m.state, m.deps()))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.AgendaLoadedMsg:
		cmds = append(cmds, update.HandleAgendaLoadedMsg(m.state, msg, m.deps()))
	case update.RenderTickMsg:
		update.HandleRenderTick(m.state, msg)
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.SubjectView:
		m.state.SubjectList, cmd = m.state.SubjectList.Update(msg)
		cmds = append(cmds, cmd)
	case state.AgendaView:
		m.state.AgendaList, cmd = m.state.AgendaList.Update(msg)
		cmds = append(cmds, cmd)
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Agenda:   m.agenda,
		Debounce: time.Duration(m.settings.DebounceMS) * time.Millisecond,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:     state.AgendaView,
		SubjectList: newSubjectList(cfg),
		AgendaList:  newAgendaList(cfg),
		Viewport:    newViewport(),
		Help:        help.New(),
		Spinner:     newSpinner(cfg),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		FeedURL:     cfg.FeedURL,
	}

	st.SubjectList.KeyMap.PrevPage = st.Keys.UpPage
	st.SubjectList.KeyMap.NextPage = st.Keys.DownPage
	st.AgendaList.KeyMap.PrevPage = st.Keys.UpPage
	st.AgendaList.KeyMap.NextPage = st.Keys.DownPage

	presenter.ApplySubjectList(&st.SubjectList, nil, "")

	return st
}

func newSubjectList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewSubjectDelegate(lipgloss.Color(cfg.Theme.Subject)), 0, 0)
	l.Title = "Matières"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	return l
}

func newAgendaList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewEntryDelegate(cfg.Theme), 0, 0)
	l.Title = "Agenda"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
