package state

// MoveCursor moves the cursor by delta, wrapping around the visible entries.
func (p *Palette) MoveCursor(delta int) bool {
	n := len(p.Entries)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = ((p.Cursor+delta)%n + n) % n
	return old != p.Cursor
}

// MoveCursorHome moves the cursor to the first entry.
func (p *Palette) MoveCursorHome() bool {
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor && len(p.Entries) > 0
}

// MoveCursorEnd moves the cursor to the last entry.
func (p *Palette) MoveCursorEnd() bool {
	old := p.Cursor
	p.Cursor = max(len(p.Entries)-1, 0)
	return old != p.Cursor
}

// EnsureCursorVisible scrolls the viewport so the cursor is one of the
// maxVisible rows shown.
func (p *Palette) EnsureCursorVisible(maxVisible int) {
	n := len(p.Entries)
	if n == 0 || maxVisible <= 0 {
		p.Cursor = max(0, min(p.Cursor, n-1))
		p.ViewportOffset = 0
		return
	}
	p.Cursor = max(0, min(p.Cursor, n-1))
	maxOffset := max(n-maxVisible, 0)
	p.ViewportOffset = max(0, min(p.ViewportOffset, maxOffset))
	switch {
	case p.Cursor < p.ViewportOffset:
		p.ViewportOffset = p.Cursor
	case p.Cursor >= p.ViewportOffset+maxVisible:
		p.ViewportOffset = min(p.Cursor-maxVisible+1, maxOffset)
	}
}

// Visible returns the entries inside the viewport and the index of the
// first one.
func (p *Palette) Visible(maxVisible int) (int, []Entry) {
	if maxVisible <= 0 || maxVisible > len(p.Entries) {
		return 0, p.Entries
	}
	start := max(0, min(p.ViewportOffset, len(p.Entries)-maxVisible))
	return start, p.Entries[start : start+maxVisible]
}
