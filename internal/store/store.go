package store

import (
	"sync"
)

// Observer is told about every applied action, after the write lock is released.
type Observer func(Action)

// Store owns the state tree. Dispatch is the only writer; readers get copies.
type Store struct {
	mu        sync.RWMutex
	state     State
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers fn to run after each applied action.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithState seeds the store with a starting state instead of Initial().
func WithState(st State) Option {
	return func(s *Store) {
		s.state = st.Clone()
	}
}

// New returns a store holding the initial state.
func New(opts ...Option) *Store {
	s := &Store{state: Initial()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies actions in order as one batch; no reader sees a partial batch.
func (s *Store) Dispatch(actions ...Action) {
	if len(actions) == 0 {
		return
	}
	s.mu.Lock()
	next := s.state
	for _, a := range actions {
		next = Reduce(next, a)
	}
	s.state = next
	s.mu.Unlock()
	s.notify(actions)
}

// Update computes a batch from the current state under the write lock. If fn
// returns an error nothing is applied and the error is returned.
func (s *Store) Update(fn func(State) ([]Action, error)) error {
	s.mu.Lock()
	actions, err := fn(s.state.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next := s.state
	for _, a := range actions {
		next = Reduce(next, a)
	}
	s.state = next
	s.mu.Unlock()
	s.notify(actions)
	return nil
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// read runs fn against the live state under the read lock. fn must not retain
// or mutate anything it is given.
func (s *Store) read(fn func(*State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

func (s *Store) notify(actions []Action) {
	for _, a := range actions {
		for _, obs := range s.observers {
			obs(a)
		}
	}
}
