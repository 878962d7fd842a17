// Package state holds the jump palette: a fuzzy-filtered list of regions
// with a cursor and a scrolling viewport.
package state

import "github.com/atomicstack/focus-tree/internal/focus"

// Entry is one jump target.
type Entry struct {
	ID    focus.ID
	Label string
	Path  string
}

// Palette tracks the visible entries, the filter query and the cursor.
type Palette struct {
	Entries        []Entry
	All            []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	ViewportOffset int
}

// NewPalette returns a palette over entries with the cursor on the entry
// whose id is current, or on the first entry.
func NewPalette(entries []Entry, current focus.ID) *Palette {
	p := &Palette{All: cloneEntries(entries)}
	p.applyFilter()
	if i := p.IndexOf(current); i >= 0 {
		p.Cursor = i
	}
	return p
}

// IndexOf returns the position of id among the visible entries.
func (p *Palette) IndexOf(id focus.ID) int {
	if id == "" {
		return -1
	}
	for i, e := range p.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the entry under the cursor.
func (p *Palette) Selected() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.Cursor], true
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
