package events

import "github.com/atomicstack/focus-tree/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Layout(path string, lists, items int) {
	logging.Trace("app.layout", map[string]interface{}{"path": path, "lists": lists, "items": items})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
