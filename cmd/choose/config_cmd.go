package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/choose/internal/config"
	"github.com/raphi011/choose/internal/log"
	"github.com/raphi011/choose/internal/output"
	"github.com/raphi011/choose/internal/terminal"
	"github.com/raphi011/choose/internal/ui/tui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage choose configuration.

Global config: ~/.config/choose/config.toml
Local config:  .choose.toml (in the current directory)`,
		Example: `  choose config init          # Create default global config
  choose config init --local  # Create local config
  choose config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.config/choose/config.toml.
With --local, creates .choose.toml in the current directory.`,
		Example: `  choose config init           # Create global config
  choose config init --local   # Create local config
  choose config init -f        # Overwrite existing config
  choose config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if local {
				if stdout {
					out.Block(config.DefaultLocalConfig())
					return nil
				}
				workDir, err := os.Getwd()
				if err != nil {
					return err
				}
				ok, err := confirmOverwrite(ctx, filepath.Join(workDir, config.LocalConfigFileName), &force)
				if err != nil || !ok {
					return err
				}
				path, err := initLocalConfig(workDir, force)
				if err != nil {
					return err
				}
				out.Printf("Created local config: %s\n", path)
				return nil
			}

			if stdout {
				out.Block(config.DefaultConfig())
				return nil
			}
			configPath, err := config.Path()
			if err != nil {
				return err
			}
			ok, err := confirmOverwrite(ctx, configPath, &force)
			if err != nil || !ok {
				return err
			}
			path, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .choose.toml instead of global config")

	return cmd
}

// confirmOverwrite asks before replacing an existing file when stdin is a
// terminal and --force was not given. A yes sets force. It reports whether
// init should go ahead.
func confirmOverwrite(ctx context.Context, path string, force *bool) (bool, error) {
	if *force || !terminal.IsTerminal(os.Stdin) {
		return true, nil
	}
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}

	answer, err := tui.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return false, err
	}
	if answer != tui.AnswerYes {
		log.FromContext(ctx).Debug("not overwriting", "path", path, "answer", answer)
		log.FromContext(ctx).Println("Aborted")
		return false, nil
	}
	*force = true
	return true, nil
}

// initLocalConfig writes the local config template into dir.
func initLocalConfig(dir string, force bool) (string, error) {
	configPath := filepath.Join(dir, config.LocalConfigFileName)

	// Check if exists
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return "", fmt.Errorf("local config already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultLocalConfig()), 0644); err != nil {
		return "", err
	}
	return configPath, nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

The global config, .choose.toml in the current directory and the
CHOOSE_FRONTEND and CHOOSE_QUESTIONS environment variables are merged.`,
		Example: `  choose config show         # Show config
  choose config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			printConfig(out, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printConfig(out *output.Printer, cfg *config.Config) {
	orNone := func(s string) string {
		if s == "" {
			return "(none)"
		}
		return s
	}

	out.Printf("frontend: %s\n", cfg.Frontend)
	out.Printf("questions: %s\n", orNone(cfg.Questions))
	out.Printf("marker: %s\n", cfg.Marker)
	out.Printf("border: %s\n", cfg.Border)
	out.Printf("banner: %s\n", orNone(cfg.Banner))
	out.Printf("theme.name: %s\n", orNone(cfg.Theme.Name))
	out.Printf("theme.mode: %s\n", orNone(cfg.Theme.Mode))
}
