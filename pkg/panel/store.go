package panel

import "github.com/formdeck/formdeck-cli/pkg/models"

// Store owns the canonical panel state. It is constructed once by the
// integration entry point and passed explicitly to every component that
// needs it; there is no package-level instance.
//
// All dispatching is synchronous and single-threaded: an action runs the
// reducer and then every listener, in registration order, before Dispatch
// returns. Listeners receive the new state and must treat it as read-only.
type Store struct {
	state     *models.CollectionState
	listeners []func(*models.CollectionState)
}

// NewStore returns a store with no state installed. Actions other than
// SetState are ignored until a snapshot arrives.
func NewStore() *Store {
	return &Store{}
}

// State returns the current state, nil before the first SetState.
func (s *Store) State() *models.CollectionState {
	return s.state
}

// Dispatch runs the reducer and notifies listeners. It returns the new
// state for convenience.
func (s *Store) Dispatch(action Action) *models.CollectionState {
	s.state = Reduce(s.state, action)
	for _, listener := range s.listeners {
		listener(s.state)
	}
	return s.state
}

// Subscribe registers a listener invoked after every dispatch. There is
// no unsubscribe; subscribers live as long as the panel.
func (s *Store) Subscribe(listener func(*models.CollectionState)) {
	s.listeners = append(s.listeners, listener)
}
