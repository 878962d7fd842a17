package focus

import (
	"slices"

	"github.com/atomicstack/focus-tree/internal/tree"
)

// report carries the details of a transition that the Manager traces.
type report struct {
	parent   ID
	adopted  []ID
	fallback ID
}

// Apply returns the state that results from applying cmd to s. Unknown ids
// and empty scopes leave the state unchanged. ancestry is only consulted by
// register commands and may be nil otherwise.
func Apply(s State, cmd Command, ancestry Ancestry) State {
	next, _ := apply(s, cmd, ancestry)
	return next
}

func apply(s State, cmd Command, ancestry Ancestry) (State, report) {
	switch cmd.Kind {
	case KindRegister:
		return register(s, cmd, ancestry)
	case KindUnregister:
		return unregister(s, cmd.ID)
	}
	return navigate(s, cmd), report{}
}

func register(s State, cmd Command, ancestry Ancestry) (State, report) {
	if cmd.ID == "" || s.has(cmd.ID) {
		return s, report{}
	}
	f := s.forest
	parent := -1
	if ancestry != nil {
		for i := 0; i < f.Len(); i++ {
			if !ancestry.IsAncestor(s.items[f.Value(i)].Handle, cmd.Handle) {
				continue
			}
			if parent < 0 || f.Depth(i) > f.Depth(parent) {
				parent = i
			}
		}
	}

	children := f.ChildrenIndexes(parent)
	slot := len(children)
	node := tree.New([]ID{cmd.ID})
	var adopted []int
	if ancestry != nil {
		for k, c := range children {
			if !ancestry.IsAncestor(cmd.Handle, s.items[f.Value(c)].Handle) {
				continue
			}
			if adopted == nil {
				slot = k
			}
			adopted = append(adopted, c)
			node = node.InsertSubtree(0, f.Subtree(c), false)
		}
	}
	// removing from the back keeps parent and earlier indexes stable
	for _, c := range slices.Backward(adopted) {
		f = f.RemoveSubtree(c)
	}

	next := State{
		forest: f.InsertSubtreeAt(parent, slot, node),
		items:  s.items.clone(),
	}
	next.items[cmd.ID] = Item{ID: cmd.ID, Handle: cmd.Handle, Focusable: cmd.Focusable}
	next = next.withActive(s.ActiveID())

	rep := report{parent: s.forest.Value(parent)}
	for _, c := range adopted {
		rep.adopted = append(rep.adopted, s.forest.Value(c))
	}
	return next, rep
}

func unregister(s State, id ID) (State, report) {
	index := tree.IndexOf(s.forest, id)
	if id == "" || index < 0 {
		return s, report{}
	}
	active := s.ActiveID()
	if active == id {
		active = ""
		if prev, ok := PreviousFocusableID(s.items, s.forest, id); ok && prev != id {
			active = prev
		}
	}
	next := State{
		forest: s.forest.RemoveNode(index),
		items:  s.items.clone(),
	}
	delete(next.items, id)
	return next.withActive(active), report{fallback: active}
}

func navigate(s State, cmd Command) State {
	if cmd.ID != "" && !s.has(cmd.ID) {
		return s
	}
	pivot := cmd.ID
	if pivot == "" {
		pivot = s.ActiveID()
	}

	var (
		target ID
		ok     bool
	)
	switch cmd.Kind {
	case KindSetFocus:
		target, ok = cmd.ID, cmd.ID != ""
	case KindFocusNext:
		target, ok = NextFocusableID(s.items, s.forest, pivot)
	case KindFocusPrev:
		target, ok = PreviousFocusableID(s.items, s.forest, pivot)
	case KindFocusNextChild, KindFocusPrevChild:
		target, ok = CycleChildren(s.items, s.forest, pivot, s.childOnPath(pivot), direction(cmd.Kind == KindFocusPrevChild))
	case KindFocusNextDescendant, KindFocusPrevDescendant:
		target, ok = CycleDescendants(s.items, s.forest, pivot, s.ActiveID(), direction(cmd.Kind == KindFocusPrevDescendant))
	case KindFocusNextSibling, KindFocusPrevSibling:
		target, ok = CycleSiblings(s.items, s.forest, pivot, direction(cmd.Kind == KindFocusPrevSibling))
	case KindFocusParent:
		index := tree.IndexOf(s.forest, pivot)
		if index < 0 {
			return s
		}
		target, ok = s.forest.Value(s.forest.ParentIndex(index)), true
	}
	if !ok {
		return s
	}
	return s.withActive(target)
}

// childOnPath returns the element of the active path directly below parent.
func (s State) childOnPath(parent ID) ID {
	i := slices.Index(s.active, parent)
	if i < 0 || i+1 >= len(s.active) {
		return ""
	}
	return s.active[i+1]
}

func direction(backward bool) Direction {
	if backward {
		return Backward
	}
	return Forward
}
