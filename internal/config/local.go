package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project config file name.
const LocalConfigFileName = ".choose.toml"

// LocalConfig holds per-project overrides from .choose.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Frontend  string      `toml:"frontend"`
	Questions string      `toml:"questions"`
	Marker    string      `toml:"marker"`
	Border    string      `toml:"border"`
	Banner    *string     `toml:"banner"`
	Theme     ThemeConfig `toml:"theme"`
}

// LoadLocal reads .choose.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := ValidateFrontend(local.Frontend); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := ValidateMarker(local.Marker); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := ValidateBorder(local.Border); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	// Relative question paths are relative to the project directory.
	if local.Questions != "" && local.Questions[0] != '~' && !filepath.IsAbs(local.Questions) {
		local.Questions = filepath.Join(dir, local.Questions)
	}
	expanded, err := expandPath(local.Questions)
	if err != nil {
		return nil, fmt.Errorf("expand questions in %s: %w", configFile, err)
	}
	local.Questions = expanded

	return &local, nil
}

// defaultLocalConfig is the template for choose config init --local
const defaultLocalConfig = `# choose local config (per-project overrides)
# Place this file in the directory you run choose from.
# Settings here override the global ~/.config/choose/config.toml.

# Question file, relative to this directory
# questions = "questions.toml"

# frontend = "tui"
# marker = ">"
# border = "-"
# banner = "Thanks!"

# [theme]
# name = "dracula"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
