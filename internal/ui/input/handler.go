package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/ui/input/modes"
	"bookshelf/internal/ui/input/types"
)

// Handler routes key presses to the active mode and tracks mode changes
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.CharLimit = 200

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// Keys the text mode did not consume go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(change types.ChangeModeAction, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = change.Mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	if h.isTextMode(h.currentMode) && change.Data != "" {
		h.textInput.SetValue(change.Data)
		h.textInput.CursorEnd()
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName is the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// Keys returns the bindings the normal mode matches against
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
