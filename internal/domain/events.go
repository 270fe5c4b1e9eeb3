package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted    EventType = "SearchSubmitted"
	EventSearchStateChanged EventType = "SearchStateChanged"
	EventSearchDiscarded    EventType = "SearchDiscarded"
	EventTabChanged         EventType = "TabChanged"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventAppReady           EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted for every submitted query, valid or not
type SearchSubmittedEvent struct {
	RequestID string
	Seq       uint64
	Query     string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SearchStateChangedEvent carries a snapshot of the request state after a transition.
// Phase is one of "idle", "loading", "success", "error".
type SearchStateChangedEvent struct {
	RequestID string
	Seq       uint64
	Phase     string
	Message   string
	Results   []Book
}

func (e SearchStateChangedEvent) Type() EventType { return EventSearchStateChanged }

// SearchDiscardedEvent is emitted when a resolution arrives for a superseded submission
type SearchDiscardedEvent struct {
	RequestID string
	Seq       uint64
	LatestSeq uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// TabChangedEvent is emitted when the active UI tab changes
type TabChangedEvent struct {
	From string
	To   string
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
