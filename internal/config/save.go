package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/rolo/internal/atomicfile"
)

type persistedConfig struct {
	DefaultBook *string              `toml:"default_book,omitempty"`
	StateFile   *string              `toml:"state_file,omitempty"`
	Audit       bool                 `toml:"audit,omitempty"`
	LogLevel    *string              `toml:"log_level,omitempty"`
	Books       map[string]string    `toml:"books,omitempty"`
	UI          *persistedUISettings `toml:"ui,omitempty"`
}

type persistedUISettings struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultBook: nonEmptyPtr(cfg.DefaultBook),
		StateFile:   nonEmptyPtr(cfg.StateFile),
		Audit:       cfg.Audit,
		LogLevel:    nonEmptyPtr(cfg.LogLevel),
	}
	if len(cfg.Books) > 0 {
		out.Books = cfg.Books
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUISettings{
			Accent:    accent,
			CodeTheme: codeTheme,
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
