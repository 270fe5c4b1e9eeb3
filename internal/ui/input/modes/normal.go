package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
)

// ggTimeout is how long the first 'g' of "gg" waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// "gg" goes to the top
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	m.lastKeyWasG = false

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case key.Matches(msg, k.SearchTab):
		return []types.Action{types.SwitchTabAction{Tab: state.TabSearch}}, true

	case key.Matches(msg, k.FizzBuzzTab):
		return []types.Action{types.SwitchTabAction{Tab: state.TabFizzBuzz}}, true

	case key.Matches(msg, k.DashboardTab):
		return []types.Action{types.SwitchTabAction{Tab: state.TabDashboard}}, true

	case key.Matches(msg, k.NextTab):
		return []types.Action{types.SwitchTabAction{Delta: 1}}, true

	case key.Matches(msg, k.PrevTab):
		return []types.Action{types.SwitchTabAction{Delta: -1}}, true
	}

	switch ctx.ActiveTab() {
	case state.TabSearch:
		switch {
		case key.Matches(msg, k.Search):
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true
		case key.Matches(msg, k.Reset):
			return []types.Action{types.ResetSearchAction{}}, true
		}
	case state.TabDashboard:
		if key.Matches(msg, k.View) {
			return []types.Action{types.ToggleDashboardViewAction{}}, true
		}
	}

	if ctx.ScrollableRows() == 0 {
		return nil, false
	}
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	return nil, false
}
