package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the query, refilters and moves the cursor to the best
// match.
func (p *Palette) SetFilter(query string, cursor int) {
	p.Filter = query
	p.FilterCursor = max(0, min(cursor, len([]rune(query))))
	p.applyFilter()
	p.ViewportOffset = 0
	if idx := BestMatchIndex(p.Entries, query); idx >= 0 {
		p.Cursor = idx
	}
}

func (p *Palette) applyFilter() {
	p.Entries = FilterEntries(p.All, p.Filter)
	if p.Cursor >= len(p.Entries) {
		p.Cursor = max(len(p.Entries)-1, 0)
	}
}

// InsertFilterText inserts text at the filter cursor.
func (p *Palette) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursor
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (p *Palette) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursor
	if pos == 0 {
		return false
	}
	p.SetFilter(string(append(runes[:pos-1:pos-1], runes[pos:]...)), pos-1)
	return true
}

// MoveFilterCursor moves the filter cursor by delta runes.
func (p *Palette) MoveFilterCursor(delta int) bool {
	next := max(0, min(p.FilterCursor+delta, len([]rune(p.Filter))))
	if next == p.FilterCursor {
		return false
	}
	p.FilterCursor = next
	return true
}

// FilterEntries returns the entries whose label fuzzily matches query,
// keeping their original order. Labels that do not match fall back to a
// substring test on the path.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	matched := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels) {
		matched[rank.OriginalIndex] = true
	}
	lower := strings.ToLower(trimmed)
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if matched[i] || strings.Contains(strings.ToLower(e.Path), lower) {
			out = append(out, e)
		}
	}
	return out
}

// BestMatchIndex prefers an exact label, then a label prefix, then the
// closest fuzzy match.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, e := range entries {
		if strings.EqualFold(e.Label, trimmed) {
			return i
		}
	}
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	best := -1
	bestDistance := 0
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels) {
		if best < 0 || rank.Distance < bestDistance || (rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best, bestDistance = rank.OriginalIndex, rank.Distance
		}
	}
	return max(best, 0)
}
