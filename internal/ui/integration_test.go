package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/atomicstack/focus-tree/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestProgramNavigatesAndQuits(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 24, Layout: layout.Default()})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("› alpha"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("› apricot"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatalf("expected *Model as final model")
	}
	if got := final.label(final.State().ActiveID()); got != "apricot" {
		t.Fatalf("expected apricot focused, got %q", got)
	}
}
