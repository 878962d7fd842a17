package tree

// Map returns a forest with the shape of f whose values are produced by fn.
func Map[V, B any](f Forest[V], fn func(value V, index int, f Forest[V]) B) Forest[B] {
	out := make([]Node[B], len(f.nodes))
	for i, n := range f.nodes {
		out[i] = withValue(n, fn(n.value, i, f))
	}
	return Forest[B]{nodes: out}
}

// FindIndex returns the first index whose value satisfies match, or -1.
func (f Forest[V]) FindIndex(match func(value V, index int, f Forest[V]) bool) int {
	for i, n := range f.nodes {
		if match(n.value, i, f) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first node holding value, or -1.
func IndexOf[V comparable](f Forest[V], value V) int {
	for i, n := range f.nodes {
		if n.value == value {
			return i
		}
	}
	return -1
}

// Filter drops every node whose value fails keep. Children of a dropped
// node are reattached to its parent.
func (f Forest[V]) Filter(keep func(value V, index int, f Forest[V]) bool) Forest[V] {
	return f.prune(keep, Forest[V].RemoveNode)
}

// TrimFilter drops every node whose value fails keep together with its
// whole subtree.
func (f Forest[V]) TrimFilter(keep func(value V, index int, f Forest[V]) bool) Forest[V] {
	return f.prune(keep, Forest[V].RemoveSubtree)
}

func (f Forest[V]) prune(keep func(V, int, Forest[V]) bool, remove func(Forest[V], int) Forest[V]) Forest[V] {
	out := f.clone()
	for i := 0; i < out.Len(); {
		if keep(out.nodes[i].value, i, out) {
			i++
			continue
		}
		out = remove(out, i)
	}
	return out
}
