package focus

import (
	"slices"
	"sync"

	"github.com/atomicstack/focus-tree/internal/logging/events"
)

// Manager owns the current State and applies commands one at a time. It is
// safe for concurrent use; commands never interleave.
type Manager struct {
	mu       sync.Mutex
	state    State
	ancestry Ancestry
}

// NewManager returns a Manager with an empty state that resolves handle
// ancestry through ancestry.
func NewManager(ancestry Ancestry) *Manager {
	return &Manager{ancestry: ancestry}
}

// Dispatch applies cmd and returns the resulting state.
func (m *Manager) Dispatch(cmd Command) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.state
	next, rep := apply(prev, cmd, m.ancestry)
	m.state = next

	changed := prev.forest.Len() != next.forest.Len() || !slices.Equal(prev.active, next.active)
	events.Focus.Apply(cmd.Kind.String(), string(cmd.ID), changed)
	switch {
	case cmd.Kind == KindRegister && next.Len() > prev.Len():
		events.Focus.Register(string(cmd.ID), string(rep.parent), idStrings(rep.adopted), cmd.Focusable)
	case cmd.Kind == KindUnregister && next.Len() < prev.Len():
		events.Focus.Unregister(string(cmd.ID), string(rep.fallback))
	}
	if !slices.Equal(prev.active, next.active) {
		events.Focus.Path(idStrings(next.active))
	}
	return next
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ActivePath returns the current active path, outermost region first.
func (m *Manager) ActivePath() []ID {
	return m.State().ActivePath()
}
