// Package config handles loading and validation of choose configuration.
//
// Configuration is read from ~/.config/choose/config.toml. A .choose.toml in
// the current directory overrides individual settings for that project.
//
// # Configuration Sources (highest priority first)
//
//   - Command line flags
//   - CHOOSE_FRONTEND env var: "terminal" or "tui"
//   - CHOOSE_QUESTIONS env var: question file to load
//   - Local .choose.toml
//   - Global config file
//   - Default values
//
// # Key Settings
//
//   - frontend: "terminal" (raw stdin, default) or "tui" (bubbletea)
//   - questions: question file used when --file is not given
//   - marker: symbol in front of the highlighted choice (default: "*")
//   - border: character repeated above and below the prompt (default: "=")
//   - banner: line printed after the last answer (default: "All done!")
//
// # Theme
//
// The [theme] section selects colors for the tui frontend:
//
//	[theme]
//	name = "nord"
//	mode = "auto"   # light, dark or auto
//	accent = "#ff79c6"
//
// # Path Validation
//
// The questions path must be absolute or start with ~ in the global config.
// The local config may use paths relative to its own directory.
package config
