package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"bookshelf/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchSubmitted    = domain.EventSearchSubmitted
	EventSearchStateChanged = domain.EventSearchStateChanged
	EventSearchDiscarded    = domain.EventSearchDiscarded
	EventTabChanged         = domain.EventTabChanged
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
	EventAppReady           = domain.EventAppReady
)

// Re-export domain event types
type SearchSubmittedEvent = domain.SearchSubmittedEvent
type SearchStateChangedEvent = domain.SearchStateChangedEvent
type SearchDiscardedEvent = domain.SearchDiscardedEvent
type TabChangedEvent = domain.TabChangedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Events are delivered one at a time, in publish order, from a single dispatcher goroutine.
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

const defaultBufferSize = 1000

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, defaultBufferSize),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		return
	default:
	}

	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Events still queued are delivered first.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers can (un)subscribe without deadlocking
	handlersCopy := make([]EventHandler, len(subs))
	for i, s := range subs {
		handlersCopy[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		b.call(handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
