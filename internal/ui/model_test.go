package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/focus-tree/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(Options{Width: 80, Layout: layout.Default()}))
}

func activeLabel(h *Harness) string {
	m := h.Model()
	return m.label(m.State().ActiveID())
}

func expectActive(t *testing.T, h *Harness, want string) {
	t.Helper()
	if got := activeLabel(h); got != want {
		t.Fatalf("expected %q to be focused, got %q", want, got)
	}
}

func TestStartupRegistersLayout(t *testing.T) {
	h := newTestHarness(t)
	if got := h.Model().State().Len(); got != 7 {
		t.Fatalf("expected 7 regions, got %d", got)
	}
	expectActive(t, h, "alpha")
	if got := len(h.Model().State().ActivePath()); got != 3 {
		t.Fatalf("expected container, list and item on the active path, got %d", got)
	}
	if err := h.Model().State().Forest().Validate(); err != nil {
		t.Fatalf("unexpected invalid forest: %v", err)
	}
}

func TestTabCyclesEveryItem(t *testing.T) {
	h := newTestHarness(t)
	for _, want := range []string{"apricot", "bravo", "alpha"} {
		h.Keys("tab")
		expectActive(t, h, want)
	}
	h.Keys("shift+tab")
	expectActive(t, h, "bravo")
}

func TestListNavigationSkipsEmptyLists(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("down")
	expectActive(t, h, "bravo")
	h.Keys("down")
	expectActive(t, h, "alpha")
	h.Keys("up")
	expectActive(t, h, "bravo")
}

func TestItemNavigationStaysInList(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("right")
	expectActive(t, h, "apricot")
	h.Keys("right")
	expectActive(t, h, "alpha")
	h.Keys("left")
	expectActive(t, h, "apricot")
	h.Keys("[")
	expectActive(t, h, "alpha")
	h.Keys("]")
	expectActive(t, h, "apricot")
	h.Keys("n")
	expectActive(t, h, "alpha")
}

func TestSiblingCycleWithSingleItemReportsNoChange(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("down", "n")
	expectActive(t, h, "bravo")
	if !strings.Contains(h.Model().infoMsg, "nothing to focus") {
		t.Fatalf("expected no-op notice, got %q", h.Model().infoMsg)
	}
}

func TestAddAndRemoveItem(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("c")
	expectActive(t, h, "List C #1")
	if got := h.Model().State().Len(); got != 8 {
		t.Fatalf("expected 8 regions after add, got %d", got)
	}
	added := h.Model().State().ActiveID()

	h.Keys("x")
	expectActive(t, h, "bravo")
	if got := h.Model().State().Len(); got != 7 {
		t.Fatalf("expected 7 regions after remove, got %d", got)
	}
	if _, ok := h.Model().Region(added); ok {
		t.Fatalf("expected removed region to be forgotten")
	}

	h.Keys("c")
	expectActive(t, h, "List C #2")
}

func TestRemoveRequiresFocusedItem(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("esc", "x")
	expectActive(t, h, "List A")
	if h.Model().infoMsg != "focus an item to remove it" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
	if got := h.Model().State().Len(); got != 7 {
		t.Fatalf("expected nothing removed, got %d regions", got)
	}
}

func TestParentClearsFocusAtRoot(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("esc", "esc")
	expectActive(t, h, "focus tree")
	h.Keys("esc")
	if len(h.Model().State().ActivePath()) != 0 {
		t.Fatalf("expected focus to be cleared, got %v", h.Model().State().ActivePath())
	}
	if !strings.Contains(h.View(), "(nothing focused)") {
		t.Fatalf("expected header to show lost focus, got:\n%s", h.View())
	}
	h.Keys("tab")
	expectActive(t, h, "alpha")
}

func TestItemKeysNeedFocusedList(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("esc", "esc", "esc", "right")
	if h.Model().infoMsg != "focus a list first" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestPaletteJumpsToRegion(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("/")
	if h.Model().Mode() != ModePalette {
		t.Fatalf("expected palette mode")
	}
	h.Keys("b", "r", "a", "v")
	if !strings.Contains(h.View(), "jump› brav") {
		t.Fatalf("expected filter in view, got:\n%s", h.View())
	}
	h.Keys("enter")
	if h.Model().Mode() != ModeBrowse {
		t.Fatalf("expected palette to close")
	}
	expectActive(t, h, "bravo")
}

func TestPaletteCancelKeepsFocus(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("/", "down", "esc")
	if h.Model().Mode() != ModeBrowse {
		t.Fatalf("expected palette to close")
	}
	expectActive(t, h, "alpha")
}

func TestPaletteWithoutMatchesSelectsNothing(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("/", "zzz")
	if !strings.Contains(h.View(), `No matches for "zzz"`) {
		t.Fatalf("expected empty palette notice, got:\n%s", h.View())
	}
	h.Keys("enter")
	expectActive(t, h, "alpha")
}

func TestQuitKey(t *testing.T) {
	m := NewModel(Options{Layout: layout.Default()})
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := NewHarness(NewModel(Options{Width: 50, Layout: layout.Default()}))
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 30})
	if h.Model().width != 50 || h.Model().height != 30 {
		t.Fatalf("expected 50x30, got %dx%d", h.Model().width, h.Model().height)
	}
}

func TestPointerMessagesReachHandlers(t *testing.T) {
	h := newTestHarness(t)
	h.Send(&tea.KeyMsg{Type: tea.KeyTab})
	expectActive(t, h, "apricot")
	h.Send((*tea.KeyMsg)(nil))
	expectActive(t, h, "apricot")
	h.Send(&tea.WindowSizeMsg{Width: 100, Height: 30})
	if h.Model().height != 30 {
		t.Fatalf("expected height 30, got %d", h.Model().height)
	}
}

func TestHandlersIgnoreForeignMessages(t *testing.T) {
	m := NewModel(Options{Layout: layout.Default()})
	for _, handle := range []msgHandler{m.handleKeyMsg, m.handleWindowSizeMsg, m.handleAppliedMsg} {
		if cmd := handle("unexpected"); cmd != nil {
			t.Fatalf("expected nil command for foreign message")
		}
	}
}
