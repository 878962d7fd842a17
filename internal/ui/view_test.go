package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/focus-tree/internal/layout"
)

func TestViewShowsListsAndActivePath(t *testing.T) {
	h := newTestHarness(t)
	view := h.View()
	for _, want := range []string{"focus tree › List A › alpha", "List B", "bravo", "(empty)", activeMarker + "alpha"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewBeforeRegistration(t *testing.T) {
	m := NewModel(Options{Layout: layout.Default()})
	if !strings.Contains(m.View(), "registering regions") {
		t.Fatalf("expected placeholder before startup, got:\n%s", m.View())
	}
}

func TestInspectorListsForest(t *testing.T) {
	h := newTestHarness(t)
	h.Keys("i")
	view := h.View()
	for _, want := range []string{"depth", "size", "    alpha", "*"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in inspector, got:\n%s", want, view)
		}
	}
	h.Keys("i")
	if strings.Contains(h.View(), "depth") {
		t.Fatalf("expected inspector to be hidden")
	}
}

func TestFooterShowsHelp(t *testing.T) {
	h := NewHarness(NewModel(Options{Width: 120, ShowFooter: true, Layout: layout.Default()}))
	if !strings.Contains(h.View(), "quit") {
		t.Fatalf("expected help in footer, got:\n%s", h.View())
	}
	h.Keys("/")
	if !strings.Contains(h.View(), "close") {
		t.Fatalf("expected palette help in footer, got:\n%s", h.View())
	}
}

func TestClip(t *testing.T) {
	if got := clip("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := clip("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
