package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/eventbus"
	"bookshelf/internal/request"
	"bookshelf/internal/ui/state"
)

// StatusTimeout is how long transient status messages stay visible
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state        *state.AppState
	discardStale bool
}

// NewEventHandler creates a new event handler. discardStale must match the
// request machine's setting so the screen follows the machine's state.
func NewEventHandler(appState *state.AppState, discardStale bool) *EventHandler {
	return &EventHandler{state: appState, discardStale: discardStale}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStateChangedEvent:
		if h.superseded(e) {
			return nil
		}
		h.state.ApplySearch(request.FromEvent(e))

	case eventbus.SearchDiscardedEvent:
		h.state.StatusMessage = fmt.Sprintf("Ignored stale result #%d (latest is #%d)", e.Seq, e.LatestSeq)
		return clearStatusAfter(StatusTimeout)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		return clearStatusAfter(StatusTimeout)
	}

	return nil
}

// superseded reports whether the snapshot is older than what the state
// already shows. The model applies the machine's state directly after
// Submit and Reset, so bus events that were queued before that can lag
// behind it.
func (h *EventHandler) superseded(e eventbus.SearchStateChangedEvent) bool {
	current := h.state.Search
	if e.Seq == current.Seq {
		// Loading always precedes the resolution of the same submission
		return e.Phase == request.PhaseLoading.String() && current.Phase != request.PhaseLoading
	}
	// Without discarding the machine lets late resolutions win, and so does the screen
	return h.discardStale && e.Seq < current.Seq
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
