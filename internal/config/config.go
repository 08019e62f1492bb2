package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendTUI      = "tui"
)

// Rendering defaults, mirrored from the prompt package so a config file can
// be shown without importing it.
const (
	DefaultMarker = "*"
	DefaultBorder = "="
	DefaultBanner = "All done!"
)

// Environment variables that override the config file.
const (
	EnvFrontend  = "CHOOSE_FRONTEND"
	EnvQuestions = "CHOOSE_QUESTIONS"
)

// ThemeConfig holds color settings for the tui frontend
type ThemeConfig struct {
	Name    string `toml:"name" json:"name,omitempty"` // preset family
	Mode    string `toml:"mode" json:"mode,omitempty"` // "light", "dark" or "auto"
	Primary string `toml:"primary" json:"primary,omitempty"`
	Accent  string `toml:"accent" json:"accent,omitempty"`
	Muted   string `toml:"muted" json:"muted,omitempty"`
	Normal  string `toml:"normal" json:"normal,omitempty"`
}

// Config holds the choose configuration
type Config struct {
	Frontend  string      `toml:"frontend" json:"frontend"`
	Questions string      `toml:"questions" json:"questions,omitempty"`
	Marker    string      `toml:"marker" json:"marker"`
	Border    string      `toml:"border" json:"border"`
	Banner    string      `toml:"banner" json:"banner"`
	Theme     ThemeConfig `toml:"theme" json:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Frontend: FrontendTerminal,
		Marker:   DefaultMarker,
		Border:   DefaultBorder,
		Banner:   DefaultBanner,
	}
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the global config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "choose", "config.toml"), nil
}

// Load reads the global config and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}
	applyEnv(&cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFile reads a global config file. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.Questions, "questions"); err != nil {
		return Default(), err
	}
	// Expand ~ in questions (shell doesn't expand in config files)
	expanded, err := expandPath(cfg.Questions)
	if err != nil {
		return Default(), fmt.Errorf("expand questions: %w", err)
	}
	cfg.Questions = expanded

	fillDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overrides settings from environment variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvFrontend); ok && v != "" {
		cfg.Frontend = v
	}
	if v, ok := lookup(EnvQuestions); ok && v != "" {
		cfg.Questions = v
	}
}

// fillDefaults replaces empty values with defaults.
// An explicitly empty banner is kept: it disables the banner.
func fillDefaults(cfg *Config) {
	if cfg.Frontend == "" {
		cfg.Frontend = FrontendTerminal
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.Border == "" {
		cfg.Border = DefaultBorder
	}
}

const defaultConfig = `# choose configuration

# How the menu is shown:
#   "terminal" - plain output, stdin in raw mode (default)
#   "tui"      - full screen bubbletea interface on stderr
# Can be overridden with CHOOSE_FRONTEND or --frontend.
frontend = "terminal"

# Question file used when --file is not given.
# Must be an absolute path or start with ~.
# Can be overridden with CHOOSE_QUESTIONS.
# questions = "~/.config/choose/questions.toml"

# Symbol printed in front of the highlighted choice
marker = "*"

# Character repeated above and below each prompt
border = "="

# Line printed after the last question is answered ("" disables it)
banner = "All done!"

# Colors for the tui frontend
# [theme]
# name = "default"   # none, default, dracula, nord
# mode = "auto"      # light, dark, auto
# primary = "62"
# accent = "212"
# muted = "240"
# normal = "252"
`

// DefaultConfig returns the default configuration file content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at the global config path.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, writeDefault(path, force)
}

func writeDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
