package types

import "bookshelf/internal/ui/state"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchTabAction activates Tab, or moves Delta tabs when Tab is empty
type SwitchTabAction struct {
	Tab   state.Tab
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ResetSearchAction struct{}

func (a ResetSearchAction) Type() string { return "reset_search" }

type ToggleDashboardViewAction struct{}

func (a ToggleDashboardViewAction) Type() string { return "toggle_dashboard_view" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
