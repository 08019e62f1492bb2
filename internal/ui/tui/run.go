package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/choose/internal/prompt"
)

// Options configures Run.
type Options struct {
	// Input defaults to os.Stdin.
	Input io.Reader
	// Output defaults to os.Stderr so stdout can be piped.
	Output io.Writer
}

// Run starts sess inside a bubbletea program and blocks until the session
// reaches a terminal state, the user interrupts or ctx is cancelled.
// A session still active when the program exits is stopped.
// It returns the session's recorded error, if any.
func Run(ctx context.Context, sess *prompt.Session, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	// Detect color profile for the output (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(out, os.Environ())

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithColorProfile(profile),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}

	m := New(sess)
	defer sess.Stop()
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, tea.ErrInterrupted) {
			return fmt.Errorf("run tui: %w", err)
		}
	}
	return sess.Err()
}
