package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/focus-tree/internal/focus"
	"github.com/atomicstack/focus-tree/internal/format/table"
	"github.com/atomicstack/focus-tree/internal/tree"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	activeMarker  = "▸ "
	idleMarker    = "  "
	ellipsis      = "…"
	minListWidth  = 8
	regionChrome  = 4 // border and horizontal padding
	filterCaret   = "▏"
	emptyListText = "(empty)"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	sections := []string{m.header(width)}
	if m.mode == ModePalette && m.palette != nil {
		sections = append(sections, m.paletteView(width))
	} else {
		sections = append(sections, m.regionsView(width))
	}
	if m.showInspector {
		sections = append(sections, m.inspectorView(width))
	}
	if m.errMsg != "" {
		sections = append(sections, styles.Error.Render(clip(m.errMsg, width)))
	} else if m.infoMsg != "" {
		sections = append(sections, styles.Info.Render(clip(m.infoMsg, width)))
	}
	if m.showFooter {
		var keys help.KeyMap = m.keys
		if m.mode == ModePalette {
			keys = m.paletteKeys
		}
		sections = append(sections, styles.Footer.Render(m.help.View(keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// header renders the layout title followed by the active path.
func (m *Model) header(width int) string {
	title := m.layout.Title
	if title == "" {
		title = "focus"
	}
	path := m.state.ActivePath()
	if len(path) == 0 {
		return styles.Header.Render(clip(title+pathSeparator+"(nothing focused)", width))
	}
	labels := make([]string, len(path))
	for i, id := range path {
		labels[i] = m.label(id)
	}
	return styles.Header.Render(clip(title+pathSeparator+strings.Join(labels, pathSeparator), width))
}

func (m *Model) regionStyle(id focus.ID) lipgloss.Style {
	switch {
	case m.state.IsFocused(id):
		return *styles.ActiveRegion
	case m.state.IsDescendantFocused(id):
		return *styles.OnPathRegion
	default:
		return *styles.Region
	}
}

// regionsView draws the container with one box per list, following the
// order of the forest.
func (m *Model) regionsView(width int) string {
	forest := m.state.Forest()
	root := tree.IndexOf(forest, m.rootID)
	if root < 0 {
		return styles.Info.Render("registering regions" + ellipsis)
	}
	lists := forest.ChildrenIndexes(root)
	inner := width - regionChrome
	listWidth := max(minListWidth, inner/max(len(lists), 1)-regionChrome)

	boxes := make([]string, 0, len(lists))
	for _, li := range lists {
		id := forest.Value(li)
		lines := []string{styles.RegionTitle.Render(clip(m.label(id), listWidth))}
		items := forest.ChildrenIndexes(li)
		if len(items) == 0 {
			lines = append(lines, styles.Unfocusable.Render(emptyListText))
		}
		for _, ii := range items {
			lines = append(lines, m.itemLine(forest.Value(ii), listWidth))
		}
		boxes = append(boxes, m.regionStyle(id).Width(listWidth).Render(strings.Join(lines, "\n")))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if len(boxes) == 0 {
		body = styles.Info.Render(emptyListText)
	}
	return m.regionStyle(m.rootID).Render(body)
}

func (m *Model) itemLine(id focus.ID, width int) string {
	text := clip(m.label(id), width-lipgloss.Width(activeMarker))
	item, _ := m.state.Item(id)
	switch {
	case m.state.IsFocused(id):
		return styles.ActiveItem.Render(activeMarker + text)
	case !item.Focusable:
		return styles.Unfocusable.Render(idleMarker + text)
	default:
		return styles.Item.Render(idleMarker + text)
	}
}

func (m *Model) paletteView(width int) string {
	p := m.palette
	runes := []rune(p.Filter)
	pos := max(0, min(p.FilterCursor, len(runes)))
	query := string(runes[:pos]) + filterCaret + string(runes[pos:])
	lines := []string{styles.FilterPrompt.Render("jump› ") + styles.Filter.Render(query)}
	if len(p.Entries) == 0 {
		msg := "(no regions)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		return strings.Join(append(lines, styles.Info.Render(msg)), "\n")
	}
	start, visible := p.Visible(m.paletteRows())
	for i, e := range visible {
		text := clip(e.Label+"  "+e.Path, width-lipgloss.Width(activeMarker))
		if start+i == p.Cursor {
			lines = append(lines, styles.PaletteCursor.Render(activeMarker+text))
			continue
		}
		lines = append(lines, styles.Item.Render(idleMarker+text))
	}
	return strings.Join(lines, "\n")
}

// inspectorView lists the raw forest: index, depth, subtree size, focus
// marker and the indented region label.
func (m *Model) inspectorView(width int) string {
	forest := m.state.Forest()
	rows := [][]string{{"#", "depth", "size", "focus", "region"}}
	for i := 0; i < forest.Len(); i++ {
		id := forest.Value(i)
		mark := ""
		switch {
		case m.state.IsFocused(id):
			mark = "*"
		case m.state.IsDescendantFocused(id):
			mark = "+"
		}
		if item, _ := m.state.Item(id); !item.Focusable {
			mark += "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(forest.Depth(i)),
			strconv.Itoa(forest.Size(i)),
			mark,
			strings.Repeat("  ", forest.Depth(i)) + m.label(id),
		})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignRight, table.AlignRight, table.AlignLeft, table.AlignLeft})
	lines := make([]string, len(formatted))
	for i, line := range formatted {
		style := styles.Inspector
		if i == 0 {
			style = styles.InspectorHead
		}
		lines[i] = style.Render(clip(line, width))
	}
	return strings.Join(lines, "\n")
}

func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
