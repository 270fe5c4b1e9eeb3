package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/ui/input/types"
)

// SearchPlaceholder is shown while the query box is empty
const SearchPlaceholder = "Search by title or author..."

// SearchPrompt is drawn in front of the query box
const SearchPrompt = "Search: "

var (
	submitKey = key.NewBinding(key.WithKeys("enter"))
	cancelKey = key.NewBinding(key.WithKeys("esc"))
	forceKey  = key.NewBinding(key.WithKeys("ctrl+c"))
)

// SearchMode edits the query in the shared text input. Keys it does not
// claim are left for the text input itself.
type SearchMode struct {
	input *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = SearchPrompt
	return &SearchMode{input: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

// Enter starts from an empty, focused box; the handler prefills it afterwards
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.input.Reset()
	m.input.Focus()
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	m.input.Blur()
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, forceKey):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, cancelKey):
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case key.Matches(msg, submitKey):
		// The raw text is submitted; trimming and validation happen downstream
		return []types.Action{
			types.SubmitTextAction{Text: m.input.Value(), Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
