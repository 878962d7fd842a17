package focus

import (
	"slices"

	"github.com/atomicstack/focus-tree/internal/tree"
)

// Item is the registration record of a region.
type Item struct {
	ID        ID
	Handle    Handle
	Focusable bool
}

// Items indexes registration records by id.
type Items map[ID]Item

// Focusable reports whether id is registered and may become active.
func (it Items) Focusable(id ID) bool {
	return it[id].Focusable
}

func (it Items) clone() Items {
	dup := make(Items, len(it)+1)
	for k, v := range it {
		dup[k] = v
	}
	return dup
}

// State is one immutable snapshot of the focus tree: the region forest, the
// registration records and the active path from the outermost region down
// to the active one.
type State struct {
	forest tree.Forest[ID]
	items  Items
	active []ID
}

// Forest returns the region forest.
func (s State) Forest() tree.Forest[ID] { return s.forest }

// Len returns the number of registered regions.
func (s State) Len() int { return s.forest.Len() }

// Item returns the registration record for id.
func (s State) Item(id ID) (Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// ActivePath returns a copy of the active path, outermost region first.
func (s State) ActivePath() []ID {
	return slices.Clone(s.active)
}

// ActiveID returns the active region, or the zero ID when nothing is active.
func (s State) ActiveID() ID {
	if len(s.active) == 0 {
		return ""
	}
	return s.active[len(s.active)-1]
}

// IsFocused reports whether id is the active region.
func (s State) IsFocused(id ID) bool {
	return id != "" && s.ActiveID() == id
}

// IsDescendantFocused reports whether the active region lies strictly below id.
func (s State) IsDescendantFocused(id ID) bool {
	return id != "" && s.ActiveID() != id && slices.Contains(s.active, id)
}

func (s State) has(id ID) bool {
	return id != "" && tree.IndexOf(s.forest, id) >= 0
}

// withActive returns s with the active path rebuilt for id.
func (s State) withActive(id ID) State {
	s.active = PathTo(s.forest, id)
	return s
}
