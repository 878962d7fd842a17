package focus

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/atomicstack/focus-tree/internal/logging"
)

func TestManagerDispatchSerializesCommands(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "focus.log"))
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	m := NewManager(pathAncestry)
	var wg sync.WaitGroup
	for _, p := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			m.Dispatch(Register(ID(p), p, true))
		}(p)
	}
	wg.Wait()

	if got := m.State().Len(); got != 4 {
		t.Fatalf("expected 4 regions, got %d", got)
	}
	m.Dispatch(FocusNext(""))
	if len(m.ActivePath()) != 1 {
		t.Fatalf("expected one element in active path, got %v", m.ActivePath())
	}
}

func TestManagerActivePathIsACopy(t *testing.T) {
	m := NewManager(pathAncestry)
	m.Dispatch(Register("a", "a", true))
	m.Dispatch(SetFocus("a"))
	path := m.ActivePath()
	path[0] = "mutated"
	if m.State().ActiveID() != "a" {
		t.Fatalf("expected manager state to be unaffected, got %q", m.State().ActiveID())
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[ID]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("expected fresh id, got %q", id)
		}
		seen[id] = true
	}
}
