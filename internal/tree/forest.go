package tree

import (
	"fmt"
	"slices"
)

// Forest is a sequence of rooted trees laid out in depth-first preorder.
// The children of the node at index i start at i+1 and are separated by
// their own subtree sizes. Index -1 stands for the virtual parent of the
// roots. A Forest is never modified after construction.
type Forest[V any] struct {
	nodes []Node[V]
}

// Shape describes the layout of a forest built with Build. At most one of
// the descriptors may be set.
type Shape struct {
	Depths   []int
	Sizes    []int
	Children []int
}

// New returns a forest where every value is an independent root.
func New[V any](values []V) Forest[V] {
	nodes := make([]Node[V], len(values))
	for i, v := range values {
		nodes[i] = NewNode(v)
	}
	return Forest[V]{nodes: nodes}
}

// Build constructs a forest from values and an optional shape descriptor.
func Build[V any](values []V, shape Shape) (Forest[V], error) {
	set := 0
	for _, d := range [][]int{shape.Depths, shape.Sizes, shape.Children} {
		if d != nil {
			set++
		}
	}
	if set > 1 {
		return Forest[V]{}, fmt.Errorf("%w: only one shape descriptor may be given", ErrMalformedShape)
	}
	switch {
	case shape.Depths != nil:
		return FromDepths(values, shape.Depths)
	case shape.Sizes != nil:
		return FromSizes(values, shape.Sizes)
	case shape.Children != nil:
		return FromChildCounts(values, shape.Children)
	default:
		return New(values), nil
	}
}

// FromDepths builds a forest from the preorder depth of every value. The
// sequence starts at 0, never goes negative and grows by at most one step
// between neighbours.
func FromDepths[V any](values []V, depths []int) (Forest[V], error) {
	if len(depths) != len(values) {
		return Forest[V]{}, fmt.Errorf("%w: %d depths for %d values", ErrMalformedShape, len(depths), len(values))
	}
	f := New(values)
	open := make([]int, 0, 8)
	last := -1
	for i, depth := range depths {
		switch {
		case depth < 0:
			return Forest[V]{}, fmt.Errorf("%w: negative depth %d at %d", ErrMalformedShape, depth, i)
		case i == 0 && depth != 0:
			return Forest[V]{}, fmt.Errorf("%w: depths must start at 0, got %d", ErrMalformedShape, depth)
		case depth > last+1:
			return Forest[V]{}, fmt.Errorf("%w: depth jumps from %d to %d at %d", ErrMalformedShape, last, depth, i)
		}
		open = open[:depth]
		for _, a := range open {
			f.nodes[a].size++
		}
		f.nodes[i].depth = depth
		open = append(open, i)
		last = depth
	}
	return f, nil
}

// FromSizes builds a forest from the subtree size of every value. Every
// subtree range has to fit inside the range of the subtree enclosing it.
func FromSizes[V any](values []V, sizes []int) (Forest[V], error) {
	if len(sizes) != len(values) {
		return Forest[V]{}, fmt.Errorf("%w: %d sizes for %d values", ErrMalformedShape, len(sizes), len(values))
	}
	f := New(values)
	ends := make([]int, 0, 8)
	for i, size := range sizes {
		if size < 1 {
			return Forest[V]{}, fmt.Errorf("%w: size %d at %d is below 1", ErrMalformedShape, size, i)
		}
		for len(ends) > 0 && ends[len(ends)-1] <= i {
			ends = ends[:len(ends)-1]
		}
		end := i + size
		if end > len(values) {
			return Forest[V]{}, fmt.Errorf("%w: subtree at %d overruns the forest", ErrMalformedShape, i)
		}
		if len(ends) > 0 && end > ends[len(ends)-1] {
			return Forest[V]{}, fmt.Errorf("%w: subtree at %d overruns its parent", ErrMalformedShape, i)
		}
		f.nodes[i].depth = len(ends)
		f.nodes[i].size = size
		ends = append(ends, end)
	}
	return f, nil
}

// FromChildCounts builds a forest from the number of direct children of
// every value.
func FromChildCounts[V any](values []V, children []int) (Forest[V], error) {
	if len(children) != len(values) {
		return Forest[V]{}, fmt.Errorf("%w: %d child counts for %d values", ErrMalformedShape, len(children), len(values))
	}
	sizes := make([]int, len(children))
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] < 0 {
			return Forest[V]{}, fmt.Errorf("%w: negative child count at %d", ErrMalformedShape, i)
		}
		sizes[i] = 1
		for c := 0; c < children[i]; c++ {
			next := i + sizes[i]
			if next >= len(children) {
				return Forest[V]{}, fmt.Errorf("%w: node at %d declares more children than follow it", ErrMalformedShape, i)
			}
			sizes[i] += sizes[next]
		}
	}
	return FromSizes(values, sizes)
}

// Len returns the number of nodes in the forest.
func (f Forest[V]) Len() int { return len(f.nodes) }

// At returns the node at index.
func (f Forest[V]) At(index int) (Node[V], bool) {
	if !f.valid(index) {
		return Node[V]{}, false
	}
	return f.nodes[index], true
}

// Value returns the value at index, or the zero value when out of range.
func (f Forest[V]) Value(index int) V {
	if !f.valid(index) {
		var zero V
		return zero
	}
	return f.nodes[index].value
}

// Depth returns the depth at index, or -1 when out of range.
func (f Forest[V]) Depth(index int) int {
	if !f.valid(index) {
		return -1
	}
	return f.nodes[index].depth
}

// Size returns the subtree size at index, or 0 when out of range.
func (f Forest[V]) Size(index int) int {
	if !f.valid(index) {
		return 0
	}
	return f.nodes[index].size
}

// Nodes returns a copy of the underlying sequence.
func (f Forest[V]) Nodes() []Node[V] {
	return slices.Clone(f.nodes)
}

// Values returns every value in preorder.
func (f Forest[V]) Values() []V {
	out := make([]V, len(f.nodes))
	for i, n := range f.nodes {
		out[i] = n.value
	}
	return out
}

// Depths returns every depth in preorder.
func (f Forest[V]) Depths() []int {
	out := make([]int, len(f.nodes))
	for i, n := range f.nodes {
		out[i] = n.depth
	}
	return out
}

// Sizes returns every subtree size in preorder.
func (f Forest[V]) Sizes() []int {
	out := make([]int, len(f.nodes))
	for i, n := range f.nodes {
		out[i] = n.size
	}
	return out
}

// ChildrenIndexes returns the direct children of parent from left to right.
// A parent of -1 yields the roots.
func (f Forest[V]) ChildrenIndexes(parent int) []int {
	if parent != -1 && !f.valid(parent) {
		return nil
	}
	start, end := 0, len(f.nodes)
	if parent >= 0 {
		start, end = parent+1, parent+f.nodes[parent].size
	}
	var out []int
	for i := start; i < end; i += f.nodes[i].size {
		out = append(out, i)
	}
	return out
}

// ParentIndex returns the index of the parent of index, or -1 for roots.
func (f Forest[V]) ParentIndex(index int) int {
	if !f.valid(index) {
		return -1
	}
	want := f.nodes[index].depth - 1
	if want < 0 {
		return -1
	}
	for i := index - 1; i >= 0; i-- {
		if f.nodes[i].depth == want {
			return i
		}
	}
	return -1
}

// AncestorIndexes returns the ancestors of index ordered from its root down
// to its parent.
func (f Forest[V]) AncestorIndexes(index int) []int {
	if !f.valid(index) {
		return nil
	}
	last := f.nodes[index].depth
	var out []int
	for i := index - 1; i >= 0 && last > 0; i-- {
		if d := f.nodes[i].depth; d < last {
			out = append(out, i)
			last = d
		}
	}
	slices.Reverse(out)
	return out
}

// Subtree returns a copy of the subtree rooted at index, rebased so that
// its root has depth 0. Index -1 returns a copy of the whole forest.
func (f Forest[V]) Subtree(index int) Forest[V] {
	if index == -1 {
		return f.clone()
	}
	if !f.valid(index) {
		return Forest[V]{}
	}
	root := f.nodes[index]
	out := make([]Node[V], root.size)
	for i := range out {
		out[i] = f.nodes[index+i].AddDepth(-root.depth)
	}
	return Forest[V]{nodes: out}
}

// InsertSubtree adds sub as the first or last children of parent.
func (f Forest[V]) InsertSubtree(parent int, sub Forest[V], atFront bool) Forest[V] {
	slot := 0
	if !atFront {
		slot = len(f.ChildrenIndexes(parent))
	}
	return f.InsertSubtreeAt(parent, slot, sub)
}

// InsertSubtreeAt adds the trees of sub as children of parent, placed before
// the child currently at position slot. Slots past the last child append.
func (f Forest[V]) InsertSubtreeAt(parent, slot int, sub Forest[V]) Forest[V] {
	if (parent != -1 && !f.valid(parent)) || sub.Len() == 0 {
		return f.clone()
	}
	children := f.ChildrenIndexes(parent)
	slot = max(0, min(slot, len(children)))
	var pos int
	switch {
	case slot < len(children):
		pos = children[slot]
	case parent < 0:
		pos = len(f.nodes)
	default:
		pos = parent + f.nodes[parent].size
	}
	base := 0
	if parent >= 0 {
		base = f.nodes[parent].depth + 1
	}

	out := make([]Node[V], 0, len(f.nodes)+sub.Len())
	out = append(out, f.nodes[:pos]...)
	for _, n := range sub.nodes {
		out = append(out, n.AddDepth(base))
	}
	out = append(out, f.nodes[pos:]...)

	if parent >= 0 {
		for _, a := range append(f.AncestorIndexes(parent), parent) {
			out[a] = out[a].AddSize(sub.Len())
		}
	}
	return Forest[V]{nodes: out}
}

// RemoveSubtree deletes the node at index together with its descendants.
func (f Forest[V]) RemoveSubtree(index int) Forest[V] {
	if !f.valid(index) {
		return f.clone()
	}
	size := f.nodes[index].size
	out := make([]Node[V], 0, len(f.nodes)-size)
	out = append(out, f.nodes[:index]...)
	out = append(out, f.nodes[index+size:]...)
	for _, a := range f.AncestorIndexes(index) {
		out[a] = out[a].AddSize(-size)
	}
	return Forest[V]{nodes: out}
}

// RemoveDescendants deletes every descendant of index and keeps the node
// itself as a leaf.
func (f Forest[V]) RemoveDescendants(index int) Forest[V] {
	if !f.valid(index) {
		return f.clone()
	}
	size := f.nodes[index].size
	out := make([]Node[V], 0, len(f.nodes)-size+1)
	out = append(out, f.nodes[:index+1]...)
	out = append(out, f.nodes[index+size:]...)
	out[index] = out[index].AddSize(1 - size)
	for _, a := range f.AncestorIndexes(index) {
		out[a] = out[a].AddSize(1 - size)
	}
	return Forest[V]{nodes: out}
}

// RemoveNode deletes the node at index. Its children move up one level and
// become children of its former parent.
func (f Forest[V]) RemoveNode(index int) Forest[V] {
	if !f.valid(index) {
		return f.clone()
	}
	size := f.nodes[index].size
	out := make([]Node[V], 0, len(f.nodes)-1)
	out = append(out, f.nodes[:index]...)
	for _, n := range f.nodes[index+1 : index+size] {
		out = append(out, n.AddDepth(-1))
	}
	out = append(out, f.nodes[index+size:]...)
	for _, a := range f.AncestorIndexes(index) {
		out[a] = out[a].AddSize(-1)
	}
	return Forest[V]{nodes: out}
}

// PromoteDepth moves the subtree at index levelStep levels up without
// changing its position. The subtree must be the trailing descendant of
// every ancestor it leaves. A negative step is refused: deepening a
// subtree in place would make it a child of its preceding sibling, which
// is a move rather than a promotion.
func (f Forest[V]) PromoteDepth(index, levelStep int) (Forest[V], error) {
	if !f.valid(index) || levelStep == 0 {
		return f.clone(), nil
	}
	if levelStep < 0 {
		return Forest[V]{}, fmt.Errorf("%w: negative step %d", ErrInvalidPromotion, levelStep)
	}
	node := f.nodes[index]
	target := node.depth - levelStep
	if target < 0 {
		return Forest[V]{}, fmt.Errorf("%w: depth %d cannot rise %d levels", ErrInvalidPromotion, node.depth, levelStep)
	}
	// ancestors[k] sits at depth k
	detached := f.AncestorIndexes(index)[target:]
	outer := f.nodes[detached[0]]
	if detached[0]+outer.size != index+node.size {
		return Forest[V]{}, fmt.Errorf("%w: subtree at %d is followed by other descendants of %d", ErrInvalidPromotion, index, detached[0])
	}
	out := f.clone()
	for i := index; i < index+node.size; i++ {
		out.nodes[i] = out.nodes[i].AddDepth(-levelStep)
	}
	for _, a := range detached {
		out.nodes[a] = out.nodes[a].AddSize(-node.size)
	}
	return out, nil
}

// Validate reports whether the depth layout and the subtree sizes agree.
func (f Forest[V]) Validate() error {
	for i, n := range f.nodes {
		if n.depth < 0 || (i == 0 && n.depth != 0) {
			return fmt.Errorf("%w: bad depth %d at %d", ErrMalformedShape, n.depth, i)
		}
		if i > 0 && n.depth > f.nodes[i-1].depth+1 {
			return fmt.Errorf("%w: depth jumps at %d", ErrMalformedShape, i)
		}
		want := 1
		for j := i + 1; j < len(f.nodes) && f.nodes[j].depth > n.depth; j++ {
			want++
		}
		if n.size != want {
			return fmt.Errorf("%w: size %d at %d, want %d", ErrMalformedShape, n.size, i, want)
		}
	}
	return nil
}

func (f Forest[V]) valid(index int) bool {
	return index >= 0 && index < len(f.nodes)
}

func (f Forest[V]) clone() Forest[V] {
	return Forest[V]{nodes: slices.Clone(f.nodes)}
}
