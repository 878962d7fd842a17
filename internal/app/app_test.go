package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRejectsBrokenLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("lists: [\n"), 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	err := Run(Config{LayoutPath: path})
	if err == nil {
		t.Fatalf("expected error for malformed layout")
	}
	if !strings.HasPrefix(err.Error(), "load layout:") {
		t.Fatalf("expected load layout error, got %v", err)
	}
}
