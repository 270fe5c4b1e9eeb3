package request

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/search"
)

// DefaultDelay is the simulated network latency between Loading and resolution
const DefaultDelay = 100 * time.Millisecond

// Options configures a Machine
type Options struct {
	// Delay before the searcher runs. Zero still resolves asynchronously.
	Delay time.Duration
	// DiscardStale drops resolutions of submissions that a newer one has
	// superseded. When false the last resolution to arrive wins.
	DiscardStale bool
	Bus          eventbus.EventBus
	Logger       *zap.Logger
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{Delay: DefaultDelay, DiscardStale: true}
}

type observer struct {
	id uint64
	fn func(State)
}

// Machine sequences searches through Idle/Loading/Success/Error states.
// The initial state is Success with the full, unfiltered book list.
type Machine struct {
	searcher     search.Searcher
	initial      []domain.Book
	delay        time.Duration
	discardStale bool
	bus          eventbus.EventBus
	logger       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	seq        uint64
	closed     bool
	timers     map[uint64]*time.Timer
	observers  []observer
	observerID uint64

	// notifyMu serializes transitions so observers see them in order
	notifyMu sync.Mutex
	pending  sync.WaitGroup
}

// NewMachine creates a machine whose initial state lists all books
func NewMachine(searcher search.Searcher, all []domain.Book, opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := opts.Delay
	if delay < 0 {
		delay = 0
	}

	initial := make([]domain.Book, len(all))
	copy(initial, all)

	ctx, cancel := context.WithCancel(context.Background())
	return &Machine{
		searcher:     searcher,
		initial:      initial,
		delay:        delay,
		discardStale: opts.DiscardStale,
		bus:          opts.Bus,
		logger:       logger.Named("request"),
		ctx:          ctx,
		cancel:       cancel,
		state:        success(initial, 0, ""),
		timers:       make(map[uint64]*time.Timer),
	}
}

// Current returns the active state
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Subscribe registers fn to be called after every accepted transition, in
// order. fn runs synchronously on the transitioning goroutine and must not
// call Submit, Reset or Close.
func (m *Machine) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observerID++
	id := m.observerID
	m.observers = append(m.observers, observer{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				break
			}
		}
	}
}

// Submit starts a search for raw. It never blocks on the search itself;
// the outcome is delivered through Current and the observers.
func (m *Machine) Submit(raw string) {
	id := uuid.NewString()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(domain.SearchSubmittedEvent{RequestID: id, Seq: seq, Query: raw})
	}

	query, err := search.Normalize(raw)
	if err != nil {
		m.logger.Debug("rejected search", zap.String("request_id", id), zap.Uint64("seq", seq))
		m.transition(failure(search.Classify(err).Message(), seq, id), m.isCurrent(seq))
		return
	}

	if !m.transition(loading(seq, id), m.isCurrent(seq)) {
		return
	}

	m.logger.Debug("search scheduled",
		zap.String("request_id", id),
		zap.Uint64("seq", seq),
		zap.String("query", query),
		zap.Duration("delay", m.delay))

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.pending.Add(1)
	m.timers[seq] = time.AfterFunc(m.delay, func() {
		defer m.pending.Done()
		m.resolve(seq, id, query)
	})
}

// Reset returns to the initial state with every book listed.
// Any search still in flight is treated as superseded.
func (m *Machine) Reset() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	m.transition(success(m.initial, seq, ""), m.isCurrent(seq))
}

// Wait blocks until every scheduled search has resolved
func (m *Machine) Wait() {
	m.pending.Wait()
}

// Close cancels pending searches and moves the machine to Idle.
// Later calls to Submit and Reset are ignored.
func (m *Machine) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	for seq, t := range m.timers {
		if t.Stop() {
			m.pending.Done()
		}
		delete(m.timers, seq)
	}
	m.mu.Unlock()

	m.cancel()
	m.pending.Wait()

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()
	m.mu.Lock()
	m.state = idle()
	observers := m.snapshotObservers()
	m.mu.Unlock()
	m.notify(idle(), observers)
}

func (m *Machine) resolve(seq uint64, id, query string) {
	m.mu.Lock()
	delete(m.timers, seq)
	m.mu.Unlock()

	results, err := m.run(query)

	var next State
	switch {
	case err != nil:
		m.logger.Error("search failed",
			zap.String("request_id", id),
			zap.Uint64("seq", seq),
			zap.String("query", query),
			zap.Error(err))
		next = failure(search.MessageUnexpected, seq, id)
	case len(results) == 0:
		next = failure(search.MessageNoMatches, seq, id)
	default:
		next = success(results, seq, id)
	}

	if m.transition(next, m.isCurrent(seq)) {
		m.logger.Debug("search resolved",
			zap.String("request_id", id),
			zap.Uint64("seq", seq),
			zap.String("phase", next.Phase.String()),
			zap.Int("results", len(next.Results)))
		if err != nil && m.bus != nil {
			m.bus.Publish(domain.ErrorEvent{Message: fmt.Sprintf("search #%d failed", seq), Err: err})
		}
		return
	}

	m.mu.Lock()
	closed, latest := m.closed, m.seq
	m.mu.Unlock()
	if closed {
		return
	}
	m.logger.Debug("discarded stale search",
		zap.String("request_id", id),
		zap.Uint64("seq", seq),
		zap.Uint64("latest_seq", latest))
	if m.bus != nil {
		m.bus.Publish(domain.SearchDiscardedEvent{RequestID: id, Seq: seq, LatestSeq: latest})
	}
}

// run invokes the searcher, turning a panic into an error
func (m *Machine) run(query string) (results []domain.Book, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("searcher panicked: %v", r)
		}
	}()
	return m.searcher.Search(m.ctx, query)
}

// isCurrent returns the guard applied to transitions of submission seq.
// It must be evaluated with mu held.
func (m *Machine) isCurrent(seq uint64) func() bool {
	return func() bool {
		return !m.discardStale || seq == m.seq
	}
}

// transition installs next if the machine is open and guard allows it
func (m *Machine) transition(next State, guard func() bool) bool {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.closed || (guard != nil && !guard()) {
		m.mu.Unlock()
		return false
	}
	m.state = next
	observers := m.snapshotObservers()
	m.mu.Unlock()

	m.notify(next, observers)
	return true
}

func (m *Machine) snapshotObservers() []func(State) {
	fns := make([]func(State), len(m.observers))
	for i, o := range m.observers {
		fns[i] = o.fn
	}
	return fns
}

func (m *Machine) notify(s State, observers []func(State)) {
	for _, fn := range observers {
		fn(s.clone())
	}
	if m.bus != nil {
		m.bus.Publish(s.event())
	}
}
