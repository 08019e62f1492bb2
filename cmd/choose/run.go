package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/raphi011/choose/internal/config"
	"github.com/raphi011/choose/internal/log"
	"github.com/raphi011/choose/internal/output"
	"github.com/raphi011/choose/internal/prompt"
	"github.com/raphi011/choose/internal/questions"
	"github.com/raphi011/choose/internal/storage"
	"github.com/raphi011/choose/internal/terminal"
	"github.com/raphi011/choose/internal/ui/tui"
)

// runOptions holds the root command flags.
type runOptions struct {
	file     string
	frontend string
	marker   string
	border   string
	json     bool
	copy     bool
	save     string
}

// streams are the menu's input and outputs. A nil in reads os.Stdin.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// runChoose runs one session. Cancelling is not an error.
func runChoose(ctx context.Context, opts runOptions, s streams) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	frontend := cfg.Frontend
	if opts.frontend != "" {
		frontend = opts.frontend
	}
	if err := config.ValidateFrontend(frontend); err != nil {
		return err
	}

	marker := cfg.Marker
	if opts.marker != "" {
		if err := config.ValidateMarker(opts.marker); err != nil {
			return err
		}
		marker = opts.marker
	}
	border := cfg.Border
	if opts.border != "" {
		if err := config.ValidateBorder(opts.border); err != nil {
			return err
		}
		border = opts.border
	}

	qs, source, err := loadQuestions(ctx, opts.file, cfg.Questions)
	if err != nil {
		return err
	}

	sess, err := prompt.New(qs,
		prompt.WithMarker(marker),
		prompt.WithBorder(border),
		prompt.WithBanner(cfg.Banner),
		prompt.WithOnDone(func(state prompt.State) {
			l.Debug("session finished", "state", state)
		}),
	)
	if err != nil {
		return err
	}

	l.Debug("starting session", "frontend", frontend, "questions", len(qs))
	switch frontend {
	case config.FrontendTUI:
		err = tui.Run(ctx, sess, tui.Options{Input: s.in, Output: s.errOut})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		// Keep stdout clean when it carries JSON.
		menu := s.out
		if opts.json {
			menu = s.errOut
		}
		err = runTerminal(ctx, sess, s.in, menu)
	}
	if err != nil {
		return err
	}

	if sess.State() != prompt.Completed {
		l.Debug("cancelled", "answered", len(sess.Selections()))
		return nil
	}

	if opts.json {
		if err := out.Selections(sess.Selections()); err != nil {
			return err
		}
	}

	if !opts.copy && opts.save == "" {
		return nil
	}
	summary, err := sess.Summary()
	if err != nil {
		return err
	}

	if opts.save != "" {
		answers := storage.Answers{
			Source:     source,
			SavedAt:    time.Now(),
			Selections: sess.Selections(),
			Summary:    summary,
		}
		if err := storage.SaveAnswers(opts.save, answers); err != nil {
			return fmt.Errorf("save answers: %w", err)
		}
		l.Debug("saved answers", "path", opts.save)
	}

	if opts.copy {
		if err := copyToClipboard(strings.Join(summary, "\n")); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}

// runTerminal drives sess from raw key input and plain line output.
func runTerminal(ctx context.Context, sess *prompt.Session, in io.Reader, w io.Writer) error {
	if in == nil {
		in = os.Stdin
	}

	input := terminal.NewInput(in)
	screen := terminal.NewScreen(w, terminal.IsTerminal(in))
	if !terminal.IsTerminal(w) {
		screen = screen.WithoutClear()
	}

	sess.Start(input, screen)
	err := input.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, terminal.ErrInputClosed), errors.Is(err, context.Canceled):
		log.FromContext(ctx).Debug("input ended before the last answer", "reason", err)
		sess.Stop()
	default:
		return err
	}

	if err := screen.Err(); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return sess.Err()
}

// demoSource names the built-in question set in saved answers.
const demoSource = "demo"

// loadQuestions reads file, falling back to the configured question file and
// then to the demo set. It also returns where the questions came from.
func loadQuestions(ctx context.Context, file, configured string) ([]prompt.Question, string, error) {
	l := log.FromContext(ctx)

	path := file
	if path == "" {
		path = configured
	}
	if path == "" {
		l.Debug("using demo questions")
		return questions.Demo(), demoSource, nil
	}

	qs, err := questions.Load(path)
	if err != nil {
		return nil, "", err
	}
	l.Debug("loaded questions", "path", path, "count", len(qs))
	return qs, path, nil
}
