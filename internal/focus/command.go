package focus

// Kind enumerates the commands understood by Apply.
type Kind int

const (
	KindRegister Kind = iota
	KindUnregister
	KindSetFocus
	KindFocusPrev
	KindFocusNext
	KindFocusPrevChild
	KindFocusNextChild
	KindFocusPrevDescendant
	KindFocusNextDescendant
	KindFocusPrevSibling
	KindFocusNextSibling
	KindFocusParent
)

var kindNames = map[Kind]string{
	KindRegister:            "register",
	KindUnregister:          "unregister",
	KindSetFocus:            "set-focus",
	KindFocusPrev:           "focus-prev",
	KindFocusNext:           "focus-next",
	KindFocusPrevChild:      "focus-prev-child",
	KindFocusNextChild:      "focus-next-child",
	KindFocusPrevDescendant: "focus-prev-descendant",
	KindFocusNextDescendant: "focus-next-descendant",
	KindFocusPrevSibling:    "focus-prev-sibling",
	KindFocusNextSibling:    "focus-next-sibling",
	KindFocusParent:         "focus-parent",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is an immutable request applied to a State. ID is the pivot of
// the command; for navigation commands an empty ID means the active region.
type Command struct {
	Kind      Kind
	ID        ID
	Handle    Handle
	Focusable bool
}

// Register adds a region positioned by handle.
func Register(id ID, handle Handle, focusable bool) Command {
	return Command{Kind: KindRegister, ID: id, Handle: handle, Focusable: focusable}
}

// Unregister removes a region, keeping its children in the tree.
func Unregister(id ID) Command { return Command{Kind: KindUnregister, ID: id} }

// SetFocus activates id without any search.
func SetFocus(id ID) Command { return Command{Kind: KindSetFocus, ID: id} }

// FocusPrev activates the previous focusable region in document order.
func FocusPrev(id ID) Command { return Command{Kind: KindFocusPrev, ID: id} }

// FocusNext activates the next focusable region in document order.
func FocusNext(id ID) Command { return Command{Kind: KindFocusNext, ID: id} }

// FocusPrevChild moves to the previous child of parent that holds something focusable.
func FocusPrevChild(parent ID) Command { return Command{Kind: KindFocusPrevChild, ID: parent} }

// FocusNextChild moves to the next child of parent that holds something focusable.
func FocusNextChild(parent ID) Command { return Command{Kind: KindFocusNextChild, ID: parent} }

// FocusPrevDescendant cycles backwards through the descendants of parent.
func FocusPrevDescendant(parent ID) Command {
	return Command{Kind: KindFocusPrevDescendant, ID: parent}
}

// FocusNextDescendant cycles forwards through the descendants of parent.
func FocusNextDescendant(parent ID) Command {
	return Command{Kind: KindFocusNextDescendant, ID: parent}
}

// FocusPrevSibling cycles backwards through the siblings of id.
func FocusPrevSibling(id ID) Command { return Command{Kind: KindFocusPrevSibling, ID: id} }

// FocusNextSibling cycles forwards through the siblings of id.
func FocusNextSibling(id ID) Command { return Command{Kind: KindFocusNextSibling, ID: id} }

// FocusParent activates the parent of id, or clears focus for roots.
func FocusParent(id ID) Command { return Command{Kind: KindFocusParent, ID: id} }
