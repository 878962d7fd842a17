package events

import "github.com/atomicstack/focus-tree/internal/logging"

// FocusTracer records every transition of the focus state.
type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Apply(kind, pivot string, changed bool) {
	logging.Trace("focus.apply", map[string]interface{}{"kind": kind, "pivot": pivot, "changed": changed})
}

func (FocusTracer) Register(id, parent string, adopted []string, focusable bool) {
	logging.Trace("focus.register", map[string]interface{}{
		"id":        id,
		"parent":    parent,
		"adopted":   adopted,
		"focusable": focusable,
	})
}

func (FocusTracer) Unregister(id, fallback string) {
	logging.Trace("focus.unregister", map[string]interface{}{"id": id, "fallback": fallback})
}

func (FocusTracer) Path(path []string) {
	logging.Trace("focus.path", map[string]interface{}{"path": path})
}
