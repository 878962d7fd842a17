package ui

import (
	"fmt"

	"github.com/atomicstack/focus-tree/internal/focus"
	"github.com/atomicstack/focus-tree/internal/layout"
	"github.com/atomicstack/focus-tree/internal/logging/events"
	"github.com/atomicstack/focus-tree/internal/ui/command"
	uistate "github.com/atomicstack/focus-tree/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const paletteLevelID = "palette"

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleAppliedMsg(msg tea.Msg) tea.Cmd {
	applied, ok := msg.(command.AppliedMsg)
	if !ok {
		return nil
	}
	m.state = applied.State
	if applied.Err != nil {
		m.errMsg = applied.Err.Error()
		return nil
	}
	for id := range m.removing {
		if _, ok := m.state.Item(id); !ok {
			delete(m.regions, id)
			delete(m.removing, id)
		}
	}
	if !applied.Changed && applied.Label != startupLabel {
		m.infoMsg = fmt.Sprintf("%s: nothing to focus", applied.Label)
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModePalette {
		return m.handlePaletteKey(keyMsg)
	}
	m.infoMsg = ""
	m.errMsg = ""
	k := m.keys
	switch {
	case key.Matches(keyMsg, k.Quit):
		return tea.Quit
	case key.Matches(keyMsg, k.Next):
		return m.dispatch("next", focus.FocusNext(""))
	case key.Matches(keyMsg, k.Prev):
		return m.dispatch("previous", focus.FocusPrev(""))
	case key.Matches(keyMsg, k.NextList):
		return m.dispatch("next list", focus.FocusNextChild(m.rootID))
	case key.Matches(keyMsg, k.PrevList):
		return m.dispatch("previous list", focus.FocusPrevChild(m.rootID))
	case key.Matches(keyMsg, k.NextItem):
		return m.dispatchInList("next item", focus.FocusNextChild)
	case key.Matches(keyMsg, k.PrevItem):
		return m.dispatchInList("previous item", focus.FocusPrevChild)
	case key.Matches(keyMsg, k.NextDesc):
		return m.dispatchInList("next descendant", focus.FocusNextDescendant)
	case key.Matches(keyMsg, k.PrevDesc):
		return m.dispatchInList("previous descendant", focus.FocusPrevDescendant)
	case key.Matches(keyMsg, k.NextSibling):
		return m.dispatch("next sibling", focus.FocusNextSibling(""))
	case key.Matches(keyMsg, k.PrevSibling):
		return m.dispatch("previous sibling", focus.FocusPrevSibling(""))
	case key.Matches(keyMsg, k.Parent):
		return m.dispatch("parent", focus.FocusParent(""))
	case key.Matches(keyMsg, k.Add):
		return m.addItem(keyMsg.String())
	case key.Matches(keyMsg, k.Remove):
		return m.removeFocused()
	case key.Matches(keyMsg, k.Jump):
		m.openPalette()
	case key.Matches(keyMsg, k.Inspector):
		m.showInspector = !m.showInspector
		events.UI.Inspector(m.showInspector)
	case key.Matches(keyMsg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) dispatch(label string, cmds ...focus.Command) tea.Cmd {
	return m.bus.Execute(command.Request{Label: label, Commands: cmds})
}

func (m *Model) dispatchInList(label string, build func(focus.ID) focus.Command) tea.Cmd {
	list := m.focusedList()
	if list == "" {
		m.infoMsg = "focus a list first"
		return nil
	}
	return m.dispatch(label, build(list))
}

func (m *Model) addItem(listKey string) tea.Cmd {
	var list layout.List
	for _, l := range m.layout.Lists {
		if l.Key == listKey {
			list = l
		}
	}
	if list.Key == "" {
		return nil
	}
	seq := m.nextSeq[list.Key]
	m.nextSeq[list.Key] = seq + 1
	region := layout.ItemRegion(list.Key, seq, fmt.Sprintf("%s #%d", list.Label, seq))
	m.regions[region.ID] = region
	events.UI.ItemAdd(list.Key, region.Label)
	return m.dispatch("add", region.Command(), focus.SetFocus(region.ID))
}

func (m *Model) removeFocused() tea.Cmd {
	active := m.manager.State().ActiveID()
	r, ok := m.regions[active]
	if !ok || !r.Focusable {
		m.infoMsg = "focus an item to remove it"
		return nil
	}
	m.removing[active] = struct{}{}
	events.UI.ItemRemove(string(active), r.Label)
	return m.dispatch("remove", focus.Unregister(active))
}

func (m *Model) openPalette() {
	current := m.manager.State()
	entries := make([]uistate.Entry, 0, current.Len())
	for _, id := range current.Forest().Values() {
		r, ok := m.regions[id]
		if !ok {
			continue
		}
		entries = append(entries, uistate.Entry{ID: id, Label: r.Label, Path: string(r.Path)})
	}
	m.palette = uistate.NewPalette(entries, current.ActiveID())
	m.palette.EnsureCursorVisible(m.paletteRows())
	m.mode = ModePalette
	events.UI.PaletteOpen(len(entries))
}

func (m *Model) closePalette() {
	m.palette = nil
	m.mode = ModeBrowse
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	p := m.palette
	if p == nil {
		m.closePalette()
		return nil
	}
	k := m.paletteKeys
	switch {
	case key.Matches(msg, k.Cancel):
		m.closePalette()
		events.UI.PaletteCancel(events.PaletteReasonEscape)
		return nil
	case key.Matches(msg, k.Select):
		entry, ok := p.Selected()
		m.closePalette()
		if !ok {
			events.UI.PaletteCancel(events.PaletteReasonEmpty)
			return nil
		}
		events.UI.PaletteSelect(string(entry.ID), entry.Label)
		return m.dispatch("jump", focus.SetFocus(entry.ID))
	case key.Matches(msg, k.Up):
		if p.MoveCursor(-1) {
			events.UI.PaletteCursor(p.Cursor)
		}
	case key.Matches(msg, k.Down):
		if p.MoveCursor(1) {
			events.UI.PaletteCursor(p.Cursor)
		}
	case key.Matches(msg, k.Clear):
		p.SetFilter("", 0)
		events.Filter.Cleared(paletteLevelID)
	default:
		m.handlePaletteText(msg)
	}
	p.EnsureCursorVisible(m.paletteRows())
	return nil
}

func (m *Model) handlePaletteText(msg tea.KeyMsg) {
	p := m.palette
	switch msg.Type {
	case tea.KeyBackspace:
		if p.DeleteFilterRuneBackward() {
			events.Filter.Backspace(paletteLevelID, p.Filter)
		}
	case tea.KeyLeft:
		if p.MoveFilterCursor(-1) {
			events.Filter.Cursor(paletteLevelID, p.FilterCursor)
		}
	case tea.KeyRight:
		if p.MoveFilterCursor(1) {
			events.Filter.Cursor(paletteLevelID, p.FilterCursor)
		}
	case tea.KeySpace:
		p.InsertFilterText(" ")
		events.Filter.Append(paletteLevelID, p.Filter)
	case tea.KeyRunes:
		if p.InsertFilterText(string(msg.Runes)) {
			events.Filter.Append(paletteLevelID, p.Filter)
		}
	}
}

// paletteRows is the number of palette entries that fit on screen.
func (m *Model) paletteRows() int {
	if m.height <= 0 {
		return paletteMaxHeight
	}
	return max(1, min(paletteMaxHeight, m.height-4))
}
