package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/choose/internal/config"
	"github.com/raphi011/choose/internal/output"
	"github.com/raphi011/choose/internal/prompt"
	"github.com/raphi011/choose/internal/questions"
	"github.com/raphi011/choose/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list [pattern]",
		Short:   "List questions",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the questions a session would ask.

With a pattern, only questions whose prompt fuzzy-matches it are shown,
best match first.`,
		Example: `  choose list                 # List the configured questions
  choose list css             # Fuzzy filter by prompt
  choose list -f q.toml --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			qs, _, err := loadQuestions(ctx, file, cfg.Questions)
			if err != nil {
				return err
			}
			// A file that cannot start a session is not worth listing.
			if _, err := prompt.New(qs); err != nil {
				return err
			}

			if len(args) > 0 {
				qs = questions.Filter(qs, args[0])
			}

			if jsonOutput {
				if qs == nil {
					qs = []prompt.Question{}
				}
				return out.JSON(qs)
			}

			rows := make([][]string, 0, len(qs))
			for _, q := range qs {
				rows = append(rows, static.QuestionTableRow(q))
			}
			out.Block(static.RenderTable(static.QuestionHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Question file (TOML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagFilename("file", "toml")

	return cmd
}
