// Package config handles global rolo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrBookNotFound is returned when a named book is not in [books].
var ErrBookNotFound = errors.New("book not found in config")

// DefaultDataFile is the data file used when no book is configured.
const DefaultDataFile = "addressbook.json"

// Config represents the global rolo configuration.
type Config struct {
	// DefaultBook is the name of the default book (from Books map).
	DefaultBook string `toml:"default_book"`

	// Books maps book names to data file paths. The extension picks the
	// storage format (.json, .yaml, .db).
	Books map[string]string `toml:"books"`

	// StateFile overrides where state.toml lives.
	StateFile string `toml:"state_file"`

	// Audit appends every mutating command to a log beside the data file.
	Audit bool `toml:"audit"`

	// LogLevel is the diagnostic log level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered help.
	CodeTheme string `toml:"code_theme"`
}

// BookPath returns the data file for a named book. If name is empty, the
// default book is used.
func (c *Config) BookPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultBook
	}
	if name == "" {
		return "", fmt.Errorf("no default book configured")
	}
	if path, ok := c.Books[name]; ok {
		return ExpandPath(path), nil
	}
	return "", fmt.Errorf("%w: %s", ErrBookNotFound, name)
}

// BookNames returns the configured book names in sorted order.
func (c *Config) BookNames() []string {
	names := make([]string, 0, len(c.Books))
	for name := range c.Books {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path.
// Returns a default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/rolo/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "rolo", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "rolo", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// DefaultDataPath is the data file used when nothing else is configured.
func DefaultDataPath() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "rolo", DefaultDataFile)
	}
	return filepath.Join(".", DefaultDataFile)
}

// DataPathOptions carries the command-line overrides for ResolveDataPath.
type DataPathOptions struct {
	// DataPath is an explicit data file (--data).
	DataPath string
	// Book is a named book (--book).
	Book string
}

// ResolveDataPath picks the data file with precedence:
//  1. opts.DataPath
//  2. opts.Book
//  3. the active book from state.toml
//  4. the default book from config.toml
//  5. DefaultDataPath()
func ResolveDataPath(opts DataPathOptions, cfg *Config, state *State) (string, error) {
	if p := strings.TrimSpace(opts.DataPath); p != "" {
		return ExpandPath(p), nil
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if name := strings.TrimSpace(opts.Book); name != "" {
		return cfg.BookPath(name)
	}
	if state != nil && state.ActiveBook != "" {
		path, err := cfg.BookPath(state.ActiveBook)
		if err != nil {
			return "", fmt.Errorf("active book: %w", err)
		}
		return path, nil
	}
	if cfg.DefaultBook != "" {
		return cfg.BookPath("")
	}
	return DefaultDataPath(), nil
}
