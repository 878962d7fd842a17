package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/focus-tree/internal/layout"
	"github.com/atomicstack/focus-tree/internal/logging/events"
	"github.com/atomicstack/focus-tree/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	ShowInspector bool
	LayoutPath    string
}

// Run loads the layout and executes the Bubble Tea program.
func Run(cfg Config) error {
	l, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	events.App.Layout(cfg.LayoutPath, len(l.Lists), l.ItemCount())

	model := ui.NewModel(ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		ShowInspector: cfg.ShowInspector,
		Layout:        l,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
