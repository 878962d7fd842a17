package layout

import (
	"strings"

	"github.com/atomicstack/focus-tree/internal/focus"
)

// Path is the slash-separated position of a region in the component
// hierarchy, e.g. "app/a/3". It is the handle passed on registration.
type Path string

// Child returns the path of a direct child called name.
func (p Path) Child(name string) Path {
	if p == "" {
		return Path(name)
	}
	return Path(string(p) + "/" + name)
}

// Parent returns the enclosing path, or "" for top-level paths.
func (p Path) Parent() Path {
	i := strings.LastIndexByte(string(p), '/')
	if i < 0 {
		return ""
	}
	return p[:i]
}

// Encloses reports whether other lies strictly below p.
func (p Path) Encloses(other Path) bool {
	return p != "" && strings.HasPrefix(string(other), string(p)+"/")
}

// Ancestry resolves handles that are Paths; any other handle type has no
// relatives.
var Ancestry focus.Ancestry = focus.AncestryFunc(func(ancestor, handle focus.Handle) bool {
	a, ok := ancestor.(Path)
	if !ok {
		return false
	}
	h, ok := handle.(Path)
	return ok && a.Encloses(h)
})
