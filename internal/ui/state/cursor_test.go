package state

import (
	"testing"

	"github.com/atomicstack/focus-tree/internal/focus"
)

func newTestPalette(labels ...string) *Palette {
	entries := make([]Entry, len(labels))
	for i, label := range labels {
		entries[i] = Entry{ID: focus.ID(label), Label: label, Path: "app/" + label}
	}
	return NewPalette(entries, "")
}

func TestNewPalettePlacesCursorOnCurrent(t *testing.T) {
	entries := []Entry{{ID: "a", Label: "a"}, {ID: "b", Label: "b"}}
	p := NewPalette(entries, "b")
	if p.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", p.Cursor)
	}
	if e, ok := p.Selected(); !ok || e.ID != "b" {
		t.Fatalf("expected b selected, got %+v", e)
	}
	if NewPalette(entries, "zz").Cursor != 0 {
		t.Fatalf("expected unknown current to leave cursor at 0")
	}
}

func TestMoveCursorWraps(t *testing.T) {
	p := newTestPalette("a", "b", "c")
	if !p.MoveCursor(-1) || p.Cursor != 2 {
		t.Fatalf("expected wrap to 2, got %d", p.Cursor)
	}
	if !p.MoveCursor(1) || p.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", p.Cursor)
	}
	empty := newTestPalette()
	if empty.MoveCursor(1) {
		t.Fatalf("expected no movement for empty palette")
	}
	if _, ok := empty.Selected(); ok {
		t.Fatalf("expected nothing selected in empty palette")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	p := newTestPalette("a", "b", "c")
	if !p.MoveCursorEnd() || p.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", p.Cursor)
	}
	if p.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !p.MoveCursorHome() || p.Cursor != 0 {
		t.Fatalf("expected cursor at home, got %d", p.Cursor)
	}
}

func TestEnsureCursorVisibleScrolls(t *testing.T) {
	p := newTestPalette("a", "b", "c", "d", "e")
	p.Cursor = 4
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", p.ViewportOffset)
	}
	start, visible := p.Visible(2)
	if start != 3 || len(visible) != 2 || visible[1].Label != "e" {
		t.Fatalf("unexpected visible entries %+v", visible)
	}
	p.Cursor = 1
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", p.ViewportOffset)
	}
	p.EnsureCursorVisible(0)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected offset reset without a viewport, got %d", p.ViewportOffset)
	}
}
