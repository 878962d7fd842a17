package tree

// Node is one element of a preorder forest: a value annotated with its depth
// and the size of the subtree it roots.
type Node[V any] struct {
	value V
	depth int
	size  int
}

// NewNode returns a root node of size one.
func NewNode[V any](value V) Node[V] {
	return Node[V]{value: value, size: 1}
}

// Value returns the node payload.
func (n Node[V]) Value() V { return n.value }

// Depth returns the distance from the node to the root of its tree.
func (n Node[V]) Depth() int { return n.depth }

// Size returns the number of nodes in the subtree rooted at n, n included.
func (n Node[V]) Size() int { return n.size }

// AddDepth returns a copy of n with its depth shifted by delta.
func (n Node[V]) AddDepth(delta int) Node[V] {
	n.depth += delta
	return n
}

// AddSize returns a copy of n with its subtree size shifted by delta.
func (n Node[V]) AddSize(delta int) Node[V] {
	n.size += delta
	return n
}

func withValue[V, B any](n Node[V], value B) Node[B] {
	return Node[B]{value: value, depth: n.depth, size: n.size}
}
