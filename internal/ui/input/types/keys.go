package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings. It doubles as the bubbles help.KeyMap
// for the footer and the help overlay.
type KeyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	SearchTab    key.Binding
	FizzBuzzTab  key.Binding
	DashboardTab key.Binding

	Search key.Binding
	Reset  key.Binding
	View   key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Help      key.Binding
	HelpPager key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab:      key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous tab")),
		SearchTab:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "book search")),
		FizzBuzzTab:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "fizzbuzz")),
		DashboardTab: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "dashboard")),

		Search: key.NewBinding(key.WithKeys("/", "enter"), key.WithHelp("/", "search")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "show all books")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "overview/insights")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("gg/home", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),

		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.SearchTab, k.FizzBuzzTab, k.DashboardTab},
		{k.Search, k.Reset, k.View},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.HelpPager, k.Quit},
	}
}
