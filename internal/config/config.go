// Package config loads editor settings from a TOML file. Missing files
// yield the defaults; a malformed file is an error so typos are not
// silently ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds text editing settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab.
	TabWidth int `toml:"tab_width"`

	// MaxUndo bounds the undo stack depth per buffer.
	MaxUndo int `toml:"max_undo"`

	// ScrollMargin keeps the cursor this many lines from the viewport
	// edge while scrolling.
	ScrollMargin int `toml:"scroll_margin"`
}

// UIConfig holds appearance settings. Colors are hex strings like "#1e2030".
type UIConfig struct {
	StatusFG    string `toml:"status_fg"`
	StatusBG    string `toml:"status_bg"`
	MessageFG   string `toml:"message_fg"`
	ErrorFG     string `toml:"error_fg"`
	LineNumbers bool   `toml:"line_numbers"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	// File is the log destination. Empty disables logging.
	File string `toml:"file"`

	// Level is a zerolog level name: debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:     4,
			MaxUndo:      1000,
			ScrollMargin: 2,
		},
		UI: UIConfig{
			StatusFG:    "#cad3f5",
			StatusBG:    "#363a4f",
			MessageFG:   "#a6da95",
			ErrorFG:     "#ed8796",
			LineNumbers: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edi", "config.toml")
}

// Load reads the config at path, applying defaults for absent keys. A
// missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.Normalized(), nil
}

// Normalized replaces out-of-range values with their defaults.
func (c Config) Normalized() Config {
	if c.Editor.TabWidth < 1 {
		c.Editor.TabWidth = Default().Editor.TabWidth
	}
	if c.Editor.MaxUndo < 1 {
		c.Editor.MaxUndo = Default().Editor.MaxUndo
	}
	if c.Editor.ScrollMargin < 0 {
		c.Editor.ScrollMargin = 0
	}
	return c
}
