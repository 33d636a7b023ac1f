// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/flextable/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Table TableConfig `toml:"table"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	Width int    `toml:"width"` // Static render width, 0 = terminal width
}

// TableConfig holds the table style override and the document to open.
type TableConfig struct {
	BorderColor     string `toml:"border_color"`     // e.g., "#7f849c" (optional)
	BackgroundColor string `toml:"background_color"` // Disabled row overlay (optional)
	Document        string `toml:"document"`         // Empty means the built-in sample
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: theme.DefaultName,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "flextable", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Table.Document = expandPath(cfg.Table.Document)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLEXTABLE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FLEXTABLE_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			cfg.UI.Width = w
		}
	}
	if v := os.Getenv("FLEXTABLE_BORDER_COLOR"); v != "" {
		cfg.Table.BorderColor = v
	}
	if v := os.Getenv("FLEXTABLE_BACKGROUND_COLOR"); v != "" {
		cfg.Table.BackgroundColor = v
	}
	if v := os.Getenv("FLEXTABLE_DOCUMENT"); v != "" {
		cfg.Table.Document = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if c.UI.Width < 0 {
		return errors.New("width must not be negative")
	}
	if err := validateColor(c.Table.BorderColor, "border_color"); err != nil {
		return err
	}
	if err := validateColor(c.Table.BackgroundColor, "background_color"); err != nil {
		return err
	}
	return nil
}

// validateColor checks an optional color is in #rrggbb format.
func validateColor(v, field string) error {
	if v == "" {
		return nil
	}
	if len(v) != 7 || v[0] != '#' || !isHex(v[1:]) {
		return fmt.Errorf("%s must be in #rrggbb format, got %q", field, v)
	}
	return nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
