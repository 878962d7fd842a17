package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/focus-tree/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth     = "FOCUS_TREE_WIDTH"
	envHeight    = "FOCUS_TREE_HEIGHT"
	envFooter    = "FOCUS_TREE_FOOTER"
	envInspector = "FOCUS_TREE_INSPECTOR"
	envTrace     = "FOCUS_TREE_TRACE"
	envLogFile   = "FOCUS_TREE_LOG_FILE"
	envLayout    = "FOCUS_TREE_LAYOUT"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment values.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("focus-tree", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the key help footer")
	inspector := fs.Bool("inspector", envOrBool(env, envInspector, false), "show the forest inspector on start")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	layoutPath := fs.String("layout", envOrDefault(env, envLayout, ""), "YAML file describing the lists (built-in layout when empty)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	return Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			ShowInspector: *inspector,
			LayoutPath:    *layoutPath,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"inspector": strconv.FormatBool(*inspector),
			"layout":    *layoutPath,
		},
		Args: append([]string(nil), args...),
	}, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that a configured layout file can be read.
func Validate(cfg Config) error {
	path := cfg.App.LayoutPath
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("layout file %s does not exist", path)
		}
		return fmt.Errorf("layout file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("layout file %s is a directory", path)
	}
	return nil
}
