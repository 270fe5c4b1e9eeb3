package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookshelf/internal/config"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/fizzbuzz"
	"bookshelf/internal/request"
	"bookshelf/internal/ui/handlers"
	"bookshelf/internal/ui/input"
	inputtypes "bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/ui/viewmodels"
	"bookshelf/internal/ui/views"
)

// SearchService is the request state machine as seen by the UI
type SearchService interface {
	Submit(raw string)
	Reset()
	Current() request.State
}

// EventMsg carries a bus event into the bubbletea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pauseRenderingMsg and resumeRenderingMsg bracket the pager's use of the terminal
type (
	pauseRenderingMsg  struct{}
	resumeRenderingMsg struct{}
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	search SearchService
	logger *zap.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc SearchService, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	inputHandler := input.New(inputtypes.DefaultKeyMap())

	appState := state.NewAppState()
	appState.ActiveTab = state.ParseTab(cfg.UI.StartTab)
	appState.FizzBuzz = fizzbuzz.Sequence(cfg.UI.FizzBuzzLimit)
	appState.ApplySearch(svc.Current())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		search:       svc,
		logger:       logger.Named("ui"),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState, cfg.Search.DiscardStale),
		viewModel:    viewmodels.NewViewModel(appState, inputHandler.Keys()),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(inputHandler.Keys()),
	}
	m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContent())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// The help overlay swallows keys until dismissed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink for the text input
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.TextInput())
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction",
		zap.String("action", action.Type()),
		zap.String("mode", m.inputHandler.ModeName()))
	switch a := action.(type) {
	case inputtypes.SwitchTabAction:
		from := m.state.ActiveTab
		if a.Tab != "" {
			m.state.SetTab(a.Tab)
		} else {
			m.state.CycleTab(a.Delta)
		}
		if m.state.ActiveTab != from {
			m.updateViewportHeight()
			if m.bus != nil {
				m.bus.Publish(eventbus.TabChangedEvent{From: string(from), To: string(m.state.ActiveTab)})
			}
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.Query = a.Text
			m.search.Submit(a.Text)
			// Submit transitions synchronously to Loading or Error; the
			// resolution arrives later as an EventMsg. Snapshots already
			// queued on the bus may lag this state; the event handler drops
			// the ones it can tell are older.
			m.state.ApplySearch(m.search.Current())
		}

	case inputtypes.ResetSearchAction:
		m.state.Query = ""
		m.search.Reset()
		m.state.ApplySearch(m.search.Current())

	case inputtypes.ToggleDashboardViewAction:
		m.state.DashboardView = m.state.DashboardView.Toggle()

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.Scroll(-1)
		case "down":
			m.state.Scroll(1)
		case "pageup":
			m.state.Scroll(-m.state.ViewportHeight)
		case "pagedown":
			m.state.Scroll(m.state.ViewportHeight)
		case "home":
			m.state.ScrollTo(false)
		case "end":
			m.state.ScrollTo(true)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.OpenHelpPagerAction:
		if m.program == nil {
			m.state.ShowHelp = true
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		// Stop the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the overlay
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.ShowHelp = true
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case handlers.ClearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// updateViewportHeight sizes the scrollable body for the active tab
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	m.state.ViewportHeight = views.ViewportRows(m.state.ActiveTab, m.height)
	// Re-clamp offsets to the new height
	m.state.Scroll(0)
}
