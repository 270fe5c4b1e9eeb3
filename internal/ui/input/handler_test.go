package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/catalog"
	"bookshelf/internal/request"
	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newCtx() (*ModelContext, *state.AppState) {
	s := state.NewAppState()
	return &ModelContext{State: s}, s
}

func TestSearchModeRoundTrip(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, _ := newCtx()

	actions, cmd := h.HandleKey(keyRunes("/"), ctx)
	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	for _, r := range "dune" {
		actions, _ = h.HandleKey(keyRunes(string(r)), ctx)
	}
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "dune"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "dune", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModePrefillsLastQuery(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, s := newCtx()
	s.Query = "gatsby"

	h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "gatsby", h.TextInput().Value())
}

func TestEscCancelsSearch(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, _ := newCtx()

	h.HandleKey(keyRunes("/"), ctx)
	h.HandleKey(keyRunes("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestTabKeys(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, _ := newCtx()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.SwitchTabAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	assert.Equal(t, []types.Action{types.SwitchTabAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(keyRunes("3"), ctx)
	assert.Equal(t, []types.Action{types.SwitchTabAction{Tab: state.TabDashboard}}, actions)
}

func TestTabSpecificKeys(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, s := newCtx()

	actions, _ := h.HandleKey(keyRunes("r"), ctx)
	assert.Equal(t, []types.Action{types.ResetSearchAction{}}, actions)
	actions, _ = h.HandleKey(keyRunes("v"), ctx)
	assert.Empty(t, actions)

	s.SetTab(state.TabDashboard)
	actions, _ = h.HandleKey(keyRunes("v"), ctx)
	assert.Equal(t, []types.Action{types.ToggleDashboardViewAction{}}, actions)
	actions, _ = h.HandleKey(keyRunes("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNavigationNeedsRows(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, s := newCtx()

	actions, _ := h.HandleKey(keyRunes("j"), ctx)
	assert.Empty(t, actions)

	s.ApplySearch(request.State{Phase: request.PhaseSuccess, Results: catalog.Default().All()})
	actions, _ = h.HandleKey(keyRunes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	h.HandleKey(keyRunes("g"), ctx)
	actions, _ = h.HandleKey(keyRunes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)

	actions, _ = h.HandleKey(keyRunes("G"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)
}

func TestQuitKeys(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx, _ := newCtx()

	actions, _ := h.HandleKey(keyRunes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	// q is text while searching
	h.HandleKey(keyRunes("/"), ctx)
	actions, _ = h.HandleKey(keyRunes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "q"}}, actions)
}
