package events

import "github.com/atomicstack/focus-tree/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type paletteReason string

const (
	PaletteReasonEscape paletteReason = "escape"
	PaletteReasonEmpty  paletteReason = "empty"
)

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Inspector(visible bool) {
	logging.Trace("ui.inspector", map[string]interface{}{"visible": visible})
}

func (UITracer) PaletteOpen(entries int) {
	logging.Trace("palette.open", map[string]interface{}{"entries": entries})
}

func (UITracer) PaletteCancel(reason paletteReason) {
	logging.Trace("palette.cancel", map[string]interface{}{"reason": string(reason)})
}

func (UITracer) PaletteSelect(id, label string) {
	logging.Trace("palette.select", map[string]interface{}{"id": id, "label": label})
}

func (UITracer) PaletteCursor(cursor int) {
	logging.Trace("palette.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) ItemAdd(list, label string) {
	logging.Trace("item.add", map[string]interface{}{"list": list, "label": label})
}

func (UITracer) ItemRemove(id, label string) {
	logging.Trace("item.remove", map[string]interface{}{"id": id, "label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Cursor(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (CommandTracer) Queue(kind, id string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "id": id})
}

func (CommandTracer) NoOp(kind, id string) {
	logging.Trace("command.noop", map[string]interface{}{"kind": kind, "id": id})
}

func (CommandTracer) Result(kind, active string) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "active": active})
}
