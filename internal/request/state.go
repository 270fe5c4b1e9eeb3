package request

import (
	"bookshelf/internal/domain"
)

// Phase identifies the active variant of a request state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the observable phase of a search. Message is set only in
// PhaseError, Results only in PhaseSuccess.
type State struct {
	Phase   Phase
	Message string
	Results []domain.Book

	// Seq and RequestID identify the submission that produced this state.
	// Both are zero for the initial state.
	Seq       uint64
	RequestID string
}

// IsTerminal reports whether no resolution is pending for this state
func (s State) IsTerminal() bool {
	return s.Phase == PhaseSuccess || s.Phase == PhaseError
}

func idle() State {
	return State{Phase: PhaseIdle}
}

func loading(seq uint64, id string) State {
	return State{Phase: PhaseLoading, Seq: seq, RequestID: id}
}

func success(results []domain.Book, seq uint64, id string) State {
	return State{Phase: PhaseSuccess, Results: results, Seq: seq, RequestID: id}
}

func failure(message string, seq uint64, id string) State {
	return State{Phase: PhaseError, Message: message, Seq: seq, RequestID: id}
}

// clone copies the result slice so observers cannot share it
func (s State) clone() State {
	if s.Results != nil {
		results := make([]domain.Book, len(s.Results))
		copy(results, s.Results)
		s.Results = results
	}
	return s
}

func (s State) event() domain.SearchStateChangedEvent {
	return domain.SearchStateChangedEvent{
		RequestID: s.RequestID,
		Seq:       s.Seq,
		Phase:     s.Phase.String(),
		Message:   s.Message,
		Results:   s.clone().Results,
	}
}

// ParsePhase is the inverse of Phase.String. Unknown names map to PhaseIdle.
func ParsePhase(name string) Phase {
	switch name {
	case "loading":
		return PhaseLoading
	case "success":
		return PhaseSuccess
	case "error":
		return PhaseError
	default:
		return PhaseIdle
	}
}

// FromEvent rebuilds the state snapshot carried by a state-change event
func FromEvent(e domain.SearchStateChangedEvent) State {
	s := State{
		Phase:     ParsePhase(e.Phase),
		Message:   e.Message,
		Results:   e.Results,
		Seq:       e.Seq,
		RequestID: e.RequestID,
	}
	return s.clone()
}
