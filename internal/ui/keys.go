package ui

import (
	"strings"

	"github.com/atomicstack/focus-tree/internal/layout"
	"github.com/charmbracelet/bubbles/key"
)

// browseKeys holds the bindings active while navigating regions.
type browseKeys struct {
	Next        key.Binding
	Prev        key.Binding
	NextList    key.Binding
	PrevList    key.Binding
	NextItem    key.Binding
	PrevItem    key.Binding
	NextDesc    key.Binding
	PrevDesc    key.Binding
	NextSibling key.Binding
	PrevSibling key.Binding
	Parent      key.Binding
	Add         key.Binding
	Remove      key.Binding
	Jump        key.Binding
	Inspector   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.NextList, k.NextItem, k.Add, k.Remove, k.Jump, k.Help, k.Quit}
}

// FullHelp returns every binding grouped by concern.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.NextList, k.PrevList, k.NextItem, k.PrevItem},
		{k.NextDesc, k.PrevDesc, k.NextSibling, k.PrevSibling, k.Parent},
		{k.Add, k.Remove, k.Jump, k.Inspector, k.Help, k.Quit},
	}
}

// paletteKeys holds the bindings of the jump palette.
type paletteKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Cancel key.Binding
}

func (k paletteKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Cancel}
}

func (k paletteKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowseKeys(l layout.Layout) browseKeys {
	addKeys := make([]string, 0, len(l.Lists))
	for _, list := range l.Lists {
		addKeys = append(addKeys, list.Key)
	}
	return browseKeys{
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		NextList:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next list")),
		PrevList:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous list")),
		NextItem:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next item")),
		PrevItem:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous item")),
		NextDesc:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next descendant")),
		PrevDesc:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous descendant")),
		NextSibling: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next sibling")),
		PrevSibling: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous sibling")),
		Parent:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "parent")),
		Add:         key.NewBinding(key.WithKeys(addKeys...), key.WithHelp(strings.Join(addKeys, "/"), "add item")),
		Remove:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove item")),
		Jump:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Inspector:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspector")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newPaletteKeys() paletteKeys {
	return paletteKeys{
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "focus")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "close")),
	}
}
