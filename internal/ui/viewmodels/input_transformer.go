package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/ui/input/types"
)

// InputTransformer turns the input handler's mode and text box into view text
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode and the text box it edits (nil outside text modes)
func (it *InputTransformer) SetMode(mode types.Mode, ti *textinput.Model) {
	it.mode = mode
	it.textInput = ti
}

// GetInputText returns the rendered text box, or "" when not editing
func (it *InputTransformer) GetInputText() string {
	if it.mode != types.ModeSearch || it.textInput == nil {
		return ""
	}
	return it.textInput.View()
}
