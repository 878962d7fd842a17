package command

import (
	"fmt"
	"slices"

	"github.com/atomicstack/focus-tree/internal/focus"
	"github.com/atomicstack/focus-tree/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Target receives focus commands. *focus.Manager satisfies it.
type Target interface {
	Dispatch(cmd focus.Command) focus.State
	State() focus.State
}

// Request is a labelled group of focus commands applied in order.
type Request struct {
	Label    string
	Commands []focus.Command
}

// AppliedMsg reports the state after a request ran.
type AppliedMsg struct {
	Label   string
	State   focus.State
	Changed bool
	Err     error
}

// Bus runs focus requests against one target.
type Bus struct {
	target Target
}

// New returns a bus bound to target.
func New(target Target) *Bus {
	return &Bus{target: target}
}

// Execute wraps req into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	for _, c := range req.Commands {
		events.Command.Queue(c.Kind.String(), string(c.ID))
	}
	return func() tea.Msg {
		return b.Run(req)
	}
}

// Run applies req synchronously.
func (b *Bus) Run(req Request) AppliedMsg {
	before := b.target.State()
	after := before
	for _, c := range req.Commands {
		after = b.target.Dispatch(c)
	}
	if err := after.Forest().Validate(); err != nil {
		err = fmt.Errorf("%s: %w", req.Label, err)
		events.Action.Error(err)
		return AppliedMsg{Label: req.Label, State: after, Err: err}
	}
	changed := before.Len() != after.Len() || !slices.Equal(before.ActivePath(), after.ActivePath())
	if changed {
		events.Command.Result(req.Label, string(after.ActiveID()))
	} else {
		events.Command.NoOp(req.Label, string(after.ActiveID()))
	}
	return AppliedMsg{Label: req.Label, State: after, Changed: changed}
}
