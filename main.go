package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/focus-tree/internal/app"
	"github.com/atomicstack/focus-tree/internal/config"
	"github.com/atomicstack/focus-tree/internal/logging"
	"github.com/atomicstack/focus-tree/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles the resolved configuration and the terminal
// the program starts in.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"logPath": logging.Path(),
		"tty":     collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Width  int              `json:"width,omitempty"`
	Height int              `json:"height,omitempty"`
	Source string           `json:"source,omitempty"`
	Probes []ttyProbeResult `json:"probes"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals and
// the size of the first one that answers.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := ttyProbeResult{Name: ttyName(f)}
		fd := int(f.Fd())
		probe.IsTerminal = term.IsTerminal(fd)
		if probe.IsTerminal && details.Source == "" {
			if w, h, err := term.GetSize(fd); err == nil {
				details.Width, details.Height, details.Source = w, h, probe.Name
			} else {
				probe.Error = err.Error()
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func ttyName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	default:
		return "stderr"
	}
}
