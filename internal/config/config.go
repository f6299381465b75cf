// Package config handles global margin configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the global configuration, loaded from config.toml.
type Config struct {
	// NotesDir overrides where annotation records are stored.
	NotesDir string `toml:"notes_dir"`

	// DefaultColor is the highlight color used when none is given.
	DefaultColor string `toml:"default_color"`

	// UI holds optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig holds optional CLI theming preferences.
type UIConfig struct {
	// Accent is an accent color for CLI output: an ANSI code ("0"-"255")
	// or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme for rendered code blocks.
	CodeTheme string `toml:"code_theme"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "margin", "config.toml")
}

// Load loads the configuration from the default location, or a zero config
// if the file doesn't exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveNotesDir returns the notes directory: the configured override or
// the default data directory.
func (c *Config) ResolveNotesDir() (string, error) {
	if c.NotesDir != "" {
		return c.NotesDir, nil
	}
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "margin", "notes"), nil
}
