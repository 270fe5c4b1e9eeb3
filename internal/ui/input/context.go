package input

import (
	"bookshelf/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// ActiveTab returns the tab receiving input
func (c *ModelContext) ActiveTab() state.Tab {
	return c.State.ActiveTab
}

// Query returns the last submitted query
func (c *ModelContext) Query() string {
	return c.State.Query
}

// ScrollableRows returns the row count of the active tab's body
func (c *ModelContext) ScrollableRows() int {
	return c.State.ScrollableRows()
}
