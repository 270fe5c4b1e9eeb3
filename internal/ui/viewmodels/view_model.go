package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/dashboard"
	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	keys             types.KeyMap
	spinner          string
	helpContent      string
	now              func() time.Time
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state:            appState,
		help:             help.New(),
		keys:             keys,
		now:              time.Now,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode and its text box
func (vm *ViewModel) SetInputMode(mode types.Mode, ti *textinput.Model) {
	vm.inputTransformer.SetMode(mode, ti)
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetHelpContent sets the text of the help overlay
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetClock replaces the clock used for the dashboard greeting
func (vm *ViewModel) SetClock(now func() time.Time) {
	vm.now = now
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		ActiveTab:      s.ActiveTab,
		Query:          s.Query,
		InputLine:      vm.inputTransformer.GetInputText(),
		Spinner:        vm.spinner,
		Search:         s.Search,
		ResultsOffset:  s.ResultsOffset,
		ViewportHeight: s.ViewportHeight,
		FizzBuzz:       s.FizzBuzz,
		FizzBuzzOffset: s.FizzBuzzOffset,
		Dashboard:      s.Dashboard,
		DashboardView:  s.DashboardView,
		Greeting:       dashboard.Greeting(vm.now().Hour()),
		StatusMessage:  s.StatusMessage,
		ShowHelp:       s.ShowHelp,
		HelpContent:    vm.helpContent,
		ShortHelp:      vm.help.ShortHelpView(vm.keys.ShortHelp()),
	}
}
