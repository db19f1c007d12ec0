package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themePath := filepath.Join(t.TempDir(), "tablero-theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemePreset(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `theme:
  preset: wave
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	wave := colors.Wave()
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("custom accent lost, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title != wave.Title {
		t.Errorf("Title = %s, want wave preset %s", cfg.ColorScheme.Title, wave.Title)
	}
}

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range colors.Presets() {
		scheme := colors.GetPreset(name)
		if scheme.Preset != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, scheme.Preset)
		}
		empty := colors.ColorScheme{}
		empty.MergeFrom(*scheme)
		empty.ApplyDefaults()
		if empty != *scheme {
			t.Errorf("preset %q does not round-trip through MergeFrom", name)
		}
	}
}
