package focus

import "github.com/atomicstack/focus-tree/internal/tree"

// Direction selects which way a cyclic walk moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// PathTo returns the ids from the root of id's tree down to id itself, or
// nil when id is not in f.
func PathTo(f tree.Forest[ID], id ID) []ID {
	if id == "" {
		return nil
	}
	index := tree.IndexOf(f, id)
	if index < 0 {
		return nil
	}
	ancestors := f.AncestorIndexes(index)
	path := make([]ID, 0, len(ancestors)+1)
	for _, a := range ancestors {
		path = append(path, f.Value(a))
	}
	return append(path, id)
}

// IsFocusableSubtree reports whether the subtree at index contains a
// focusable region. Index -1 checks the whole forest.
func IsFocusableSubtree(items Items, f tree.Forest[ID], index int) bool {
	return f.Subtree(index).FindIndex(func(id ID, _ int, _ tree.Forest[ID]) bool {
		return items.Focusable(id)
	}) >= 0
}

// NextID returns the id following current in f, wrapping at the end. An
// absent current yields the first id.
func NextID(f tree.Forest[ID], current ID) (ID, bool) {
	n := f.Len()
	if n == 0 {
		return "", false
	}
	return f.Value((tree.IndexOf(f, current) + 1) % n), true
}

// PreviousID returns the id preceding current in f, wrapping at the start.
// An absent current yields the first id.
func PreviousID(f tree.Forest[ID], current ID) (ID, bool) {
	n := f.Len()
	if n == 0 {
		return "", false
	}
	i := tree.IndexOf(f, current)
	if i < 0 {
		return f.Value(0), true
	}
	return f.Value((i - 1 + n) % n), true
}

// NextFocusableID is NextID restricted to focusable regions.
func NextFocusableID(items Items, f tree.Forest[ID], current ID) (ID, bool) {
	if !IsFocusableSubtree(items, f, -1) {
		return "", false
	}
	n := f.Len()
	i := (tree.IndexOf(f, current) + 1) % n
	for !items.Focusable(f.Value(i)) {
		i = (i + 1) % n
	}
	return f.Value(i), true
}

// PreviousFocusableID is PreviousID restricted to focusable regions.
func PreviousFocusableID(items Items, f tree.Forest[ID], current ID) (ID, bool) {
	if !IsFocusableSubtree(items, f, -1) {
		return "", false
	}
	n := f.Len()
	i := 0
	if at := tree.IndexOf(f, current); at >= 0 {
		i = (at - 1 + n) % n
	}
	for !items.Focusable(f.Value(i)) {
		i = (i - 1 + n) % n
	}
	return f.Value(i), true
}

// LastFocusableID returns the last focusable region of f in preorder.
func LastFocusableID(items Items, f tree.Forest[ID]) (ID, bool) {
	for i := f.Len() - 1; i >= 0; i-- {
		if id := f.Value(i); items.Focusable(id) {
			return id, true
		}
	}
	return "", false
}

// Cycle walks f from current in the given direction to the next focusable region.
func Cycle(items Items, f tree.Forest[ID], current ID, dir Direction) (ID, bool) {
	if dir == Backward {
		return PreviousFocusableID(items, f, current)
	}
	return NextFocusableID(items, f, current)
}

// CycleChildren picks the next or previous direct child of parent whose
// subtree holds a focusable region, relative to current, and returns the
// first (forward) or last (backward) focusable region inside it.
func CycleChildren(items Items, f tree.Forest[ID], parent, current ID, dir Direction) (ID, bool) {
	p := tree.IndexOf(f, parent)
	if p < 0 {
		return "", false
	}
	var ids []ID
	for _, c := range f.ChildrenIndexes(p) {
		if IsFocusableSubtree(items, f, c) {
			ids = append(ids, f.Value(c))
		}
	}
	candidates := tree.New(ids)
	step := NextID
	if dir == Backward {
		step = PreviousID
	}
	child, ok := step(candidates, current)
	if !ok {
		return "", false
	}
	sub := f.Subtree(tree.IndexOf(f, child))
	if dir == Backward {
		return LastFocusableID(items, sub)
	}
	return NextFocusableID(items, sub, "")
}

// CycleDescendants walks the descendants of parent, excluding parent itself.
func CycleDescendants(items Items, f tree.Forest[ID], parent, current ID, dir Direction) (ID, bool) {
	p := tree.IndexOf(f, parent)
	if p < 0 {
		return "", false
	}
	scope := f.Subtree(p).RemoveNode(0)
	return Cycle(items, scope, current, dir)
}

// CycleSiblings walks the subtree of id's parent with id's own descendants
// and the parent itself left out. Roots walk the whole forest.
func CycleSiblings(items Items, f tree.Forest[ID], id ID, dir Direction) (ID, bool) {
	i := tree.IndexOf(f, id)
	if i < 0 {
		return "", false
	}
	trimmed := f.RemoveDescendants(i)
	parent := trimmed.ParentIndex(i)
	scope := trimmed.Subtree(parent)
	if parent >= 0 {
		scope = scope.RemoveNode(0)
	}
	return Cycle(items, scope, id, dir)
}
