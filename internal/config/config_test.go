package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bitsctl.toml")
	content := `
input = " puzzles/day16.txt "
max_depth = 32
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Input != "puzzles/day16.txt" {
		t.Fatalf("unexpected input: %q", cfg.Input)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.Limits().MaxDepth != 32 {
		t.Fatalf("unexpected max depth: %d", cfg.Limits().MaxDepth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load with allowMissing: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if _, err := Load(path, false); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty input", `input = "  "`, "input path is required"},
		{"bad level", `log_level = "loud"`, "unsupported log_level"},
		{"zero depth", `max_depth = 0`, "max_depth must be positive"},
		{"unknown key", `inptu = "x"`, "unknown key"},
		{"bad toml", `input = `, "load bitsctl config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bitsctl.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := Load(path, false)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestWriteTemplateRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitsctl.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}

	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
}
