package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/TimelordUK/hilite/internal/driver"
	"github.com/TimelordUK/hilite/internal/highlight"
	"github.com/TimelordUK/hilite/internal/render"
)

// Config holds all application configuration
type Config struct {
	Theme     ThemeConfig     `toml:"theme"`
	Highlight HighlightConfig `toml:"highlight"`
	Display   DisplayConfig   `toml:"display"`
}

// ThemeConfig selects the colour scheme
type ThemeConfig struct {
	Name string `toml:"name"`
}

// HighlightConfig controls lexer selection and failure handling
type HighlightConfig struct {
	Lexer   string            `toml:"lexer"`   // force one lexer for every file
	Mode    string            `toml:"mode"`    // strict or best-effort
	Aliases map[string]string `toml:"aliases"` // extension -> lexer name
}

// DisplayConfig holds display options
type DisplayConfig struct {
	Color       string `toml:"color"` // always, auto or never
	LineNumbers bool   `toml:"line_numbers"`
	TabWidth    int    `toml:"tab_width"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name: highlight.DefaultTheme,
		},
		Highlight: HighlightConfig{
			Mode:    string(driver.ModeStrict),
			Aliases: map[string]string{},
		},
		Display: DisplayConfig{
			Color:       string(render.ColorAlways),
			LineNumbers: false,
			TabWidth:    0,
		},
	}
}

// Validate checks enumerated and numeric fields
func (c *Config) Validate() error {
	var errs []error
	if _, err := driver.ParseMode(c.Highlight.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseColorMode(c.Display.Color); err != nil {
		errs = append(errs, err)
	}
	if c.Display.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("invalid tab width %d", c.Display.TabWidth))
	}
	return errors.Join(errs...)
}

// Load loads config from the default location. A missing file there
// yields the defaults.
func Load() (*Config, error) {
	path := getConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads config from path, which must exist
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			row, col := decErr.Position()
			return nil, fmt.Errorf("parse error in %s at line %d, column %d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves config to the default location
func Save(cfg *Config) error {
	return SaveFile(getConfigPath(), cfg)
}

// SaveFile saves config to path
func SaveFile(path string, cfg *Config) error {
	if path == "" {
		return errors.New("no config path")
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hilite", "config.toml")
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "hilite", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}
