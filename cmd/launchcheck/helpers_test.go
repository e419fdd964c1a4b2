package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/media-code-now/launchcheck-pro/internal/models"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a very long project name", 12, "this is a..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestStatusGlyph(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{models.StatusDone, "[x]"},
		{models.StatusInProgress, "[~]"},
		{models.StatusNotApplicable, "[-]"},
		{models.StatusNotStarted, "[ ]"},
		{"unknown", "[ ]"},
	}
	for _, tt := range tests {
		if got := statusGlyph(tt.status); got != tt.want {
			t.Errorf("statusGlyph(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestLoadConfig_MissingDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(orig)

	cfg, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("fallback driver = %q, want sqlite", cfg.Database.Driver)
	}
}

func TestLoadConfig_ExplicitMissingPathErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "custom.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchcheck.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191", cfg.Server.Port)
	}
}
