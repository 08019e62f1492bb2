package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/choose/internal/config"
	"github.com/raphi011/choose/internal/log"
	"github.com/raphi011/choose/internal/output"
	"github.com/raphi011/choose/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "choose",
		Short: "Answer a series of menu questions in the terminal",
		Long: `choose walks you through a list of questions, one menu at a time.

Move with the arrow keys (or j/k), confirm with enter and quit with esc or
ctrl+c. After the last answer a summary of every selection is printed.

Questions come from --file, the questions setting in the config or the
built-in demo set.`,
		Example: `  choose                       # Run the demo questions
  choose -f questions.toml     # Run questions from a file
  choose --frontend tui        # Full screen interface
  choose --json > answers.json # Menu on stderr, selections as JSON on stdout
  choose --copy                # Copy the summary to the clipboard
  choose --save answers.json   # Keep the answers in a file`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Create logger now that flags are parsed (stderr for diagnostics)
			logger := log.New(os.Stderr, verbose, quiet)
			ctx = log.WithLogger(ctx, logger)

			// These must work with a broken config
			switch cmd.Name() {
			case "completion", "__complete", "help", "init", "version":
				cmd.SetContext(ctx)
				return nil
			}

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			styles.Init(cfg.Theme)

			cmd.SetContext(config.WithConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChoose(cmd.Context(), opts, streams{out: os.Stdout, errOut: os.Stderr})
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Question file (TOML)")
	cmd.Flags().StringVar(&opts.frontend, "frontend", "", "Frontend: terminal or tui")
	cmd.Flags().StringVar(&opts.marker, "marker", "", "Symbol in front of the highlighted choice")
	cmd.Flags().StringVar(&opts.border, "border", "", "Character repeated around each prompt")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print selections as JSON on stdout")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the summary to the clipboard")
	cmd.Flags().StringVar(&opts.save, "save", "", "Write the answers as JSON to this file")
	cmd.RegisterFlagCompletionFunc("frontend", cobra.FixedCompletions(config.ValidFrontends, cobra.ShellCompDirectiveNoFileComp))
	cmd.MarkFlagFilename("file", "toml")
	cmd.MarkFlagFilename("save", "json")

	return cmd
}

// loadConfig reads the global config and merges .choose.toml from the
// working directory.
func loadConfig(ctx context.Context) (*config.Config, error) {
	l := log.FromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	local, err := config.LoadLocal(workDir)
	if err != nil {
		return nil, err
	}
	if local != nil {
		l.Debug("using local config", "path", workDir+string(os.PathSeparator)+config.LocalConfigFileName)
	}

	merged := config.MergeLocal(&cfg, local)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'choose -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newListCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())
}
