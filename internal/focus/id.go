package focus

import "github.com/google/uuid"

// ID identifies a registered region. The zero value means "no region".
type ID string

// NewID issues a fresh identifier that is unique for the process lifetime.
func NewID() ID {
	return ID(uuid.NewString())
}

// Handle is the caller's opaque reference to the position of a region in
// its own component hierarchy.
type Handle any

// Ancestry answers whether one handle encloses another. It is supplied by
// whoever owns the component hierarchy and is only consulted on register.
type Ancestry interface {
	IsAncestor(ancestor, handle Handle) bool
}

// AncestryFunc adapts a plain function to Ancestry.
type AncestryFunc func(ancestor, handle Handle) bool

// IsAncestor calls fn.
func (fn AncestryFunc) IsAncestor(ancestor, handle Handle) bool {
	return fn(ancestor, handle)
}

func idStrings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
