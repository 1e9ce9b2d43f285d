package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Listener observes a completed transition. Listeners run in registration
// order. Actions dispatched from a listener are applied at once but their
// listeners run only after the current round of listeners has finished.
type Listener func(prev, next State, a Action)

type transition struct {
	prev, next State
	action     Action
}

type subscription struct {
	id int
	l  Listener
}

// Store serializes actions through Reduce. Transitions are applied in
// dispatch order and listeners observe them in that same order.
type Store struct {
	mu        sync.Mutex
	state     State
	pending   []transition
	notifying bool
	listeners []subscription
	nextID    int

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp mutations.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the generator used for new entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithState starts the store from the given state instead of Initial().
func WithState(st State) Option {
	return func(s *Store) { s.state = st }
}

// New creates a Store holding Initial() state.
func New(opts ...Option) *Store {
	s := &Store{
		state: Initial(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, l: l})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool { return sub.id == id })
	}
}

// Dispatch applies a. The new state is visible through State as soon as
// Dispatch returns. When another goroutine (or a listener) is already
// notifying, the transition is handed to it; otherwise every pending
// transition has been delivered to listeners before Dispatch returns.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	prev := s.state
	s.state = Reduce(prev, a, Env{Now: s.now(), NewID: s.newID})
	s.pending = append(s.pending, transition{prev: prev, next: s.state, action: a})
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true

	for len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		listeners := make([]Listener, 0, len(s.listeners))
		for _, sub := range s.listeners {
			listeners = append(listeners, sub.l)
		}
		s.mu.Unlock()

		for _, l := range listeners {
			l(t.prev, t.next, t.action)
		}

		s.mu.Lock()
	}

	s.pending = nil
	s.notifying = false
	s.mu.Unlock()
}
