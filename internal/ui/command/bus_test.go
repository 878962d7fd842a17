package command

import (
	"testing"

	"github.com/atomicstack/focus-tree/internal/focus"
	"github.com/atomicstack/focus-tree/internal/layout"
)

func TestExecuteAppliesCommandsInOrder(t *testing.T) {
	m := focus.NewManager(layout.Ancestry)
	bus := New(m)
	cmd := bus.Execute(Request{Label: "setup", Commands: []focus.Command{
		focus.Register("a", layout.Path("app/a"), true),
		focus.Register("root", layout.Path("app"), false),
		focus.FocusNext(""),
	}})
	msg, ok := cmd().(AppliedMsg)
	if !ok {
		t.Fatalf("expected AppliedMsg")
	}
	if !msg.Changed || msg.Label != "setup" {
		t.Fatalf("unexpected message %+v", msg)
	}
	path := msg.State.ActivePath()
	if len(path) != 2 || path[0] != "root" || path[1] != "a" {
		t.Fatalf("expected [root a], got %v", path)
	}
}

func TestRunReportsNoOp(t *testing.T) {
	m := focus.NewManager(layout.Ancestry)
	msg := New(m).Run(Request{Label: "nothing", Commands: []focus.Command{focus.FocusNext("")}})
	if msg.Changed {
		t.Fatalf("expected no change on empty state")
	}
}
