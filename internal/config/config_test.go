package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
notes_dir = "/tmp/margin-notes"
default_color = "green"

[ui]
accent = "#A78BFA"
code_theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NotesDir != "/tmp/margin-notes" {
		t.Errorf("notes_dir = %q", cfg.NotesDir)
	}
	if cfg.DefaultColor != "green" {
		t.Errorf("default_color = %q", cfg.DefaultColor)
	}
	if cfg.UI.Accent != "#A78BFA" || cfg.UI.CodeTheme != "dracula" {
		t.Errorf("ui config = %+v", cfg.UI)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("notes_dir = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveNotesDirOverride(t *testing.T) {
	cfg := &Config{NotesDir: "/custom/notes"}
	dir, err := cfg.ResolveNotesDir()
	if err != nil || dir != "/custom/notes" {
		t.Errorf("resolved = %q, %v", dir, err)
	}
}

func TestResolveNotesDirXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	dir, err := (&Config{}).ResolveNotesDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/xdg/data", "margin", "notes") {
		t.Errorf("resolved = %q", dir)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := DefaultPath(); got != filepath.Join("/xdg/config", "margin", "config.toml") {
		t.Errorf("default path = %q", got)
	}
}
