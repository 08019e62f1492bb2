package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/choose/internal/config"
	"github.com/raphi011/choose/internal/log"
	"github.com/raphi011/choose/internal/output"
	"github.com/raphi011/choose/internal/prompt"
	"github.com/raphi011/choose/internal/storage"
)

// testEnv holds the buffers behind a command context.
type testEnv struct {
	ctx    context.Context
	data   *bytes.Buffer // printer
	logs   *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()

	env := &testEnv{
		data:   &bytes.Buffer{},
		logs:   &bytes.Buffer{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	ctx := context.Background()
	ctx = config.WithConfig(ctx, &cfg)
	ctx = log.WithLogger(ctx, log.New(env.logs, true, false))
	ctx = output.WithPrinter(ctx, env.data)
	env.ctx = ctx
	return env
}

func (e *testEnv) run(opts runOptions, script string) error {
	return runChoose(e.ctx, opts, streams{
		in:     strings.NewReader(script),
		out:    e.stdout,
		errOut: e.stderr,
	})
}

func writeQuestions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunChoose_Complete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{}, "j\rj\r\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}

	got := env.stdout.String()
	for _, want := range []string{
		"Select Framework\n",
		"* Vanilla\n",
		"You selected: React\n",
		"You selected: TypeScript\n",
		"All done!\n- Select Framework -> React\n- TypeScript -> TypeScript\n- CSS Library -> Vanilla\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("menu output missing %q:\n%s", want, got)
		}
	}
	if env.data.Len() != 0 {
		t.Errorf("unexpected data output %q", env.data.String())
	}
	if !strings.Contains(env.logs.String(), "state=completed") {
		t.Errorf("logs = %q, want completion debug line", env.logs.String())
	}
}

func TestRunChoose_InputClosedStopsSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{json: true}, "j\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}
	if !strings.Contains(env.logs.String(), "state=stopped") {
		t.Errorf("logs = %q, want the session stopped", env.logs.String())
	}
	if env.data.Len() != 0 {
		t.Errorf("partial answers printed: %q", env.data.String())
	}
}

func TestRunTerminal_StopsSessionWhenInputEnds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, config.Default())
	sess, err := prompt.New([]prompt.Question{{ID: 1, Prompt: "Pick", Choices: []string{"a", "b"}}})
	if err != nil {
		t.Fatalf("prompt.New() error = %v", err)
	}

	var menu bytes.Buffer
	if err := runTerminal(env.ctx, sess, strings.NewReader("j"), &menu); err != nil {
		t.Fatalf("runTerminal() error = %v", err)
	}
	if sess.State() != prompt.Stopped {
		t.Errorf("State() = %v, want stopped", sess.State())
	}
	if sess.ChoiceIndex() != 1 {
		t.Errorf("ChoiceIndex() = %d, want 1", sess.ChoiceIndex())
	}
}

func TestRunChoose_Options(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Banner = ""
	env := newTestEnv(t, cfg)

	path := writeQuestions(t, `
[[question]]
id = 1
prompt = "Pick"
choices = ["a", "b"]
`)
	opts := runOptions{file: path, marker: ">", border: "-"}
	if err := env.run(opts, "\x1b[B\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}

	got := env.stdout.String()
	if !strings.Contains(got, "----\nPick\n----\n> a\nb\n") {
		t.Errorf("custom marker and border not rendered:\n%s", got)
	}
	if strings.Contains(got, "All done!") {
		t.Errorf("banner printed although disabled:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n- Pick -> b\n") {
		t.Errorf("summary missing:\n%s", got)
	}
}

func TestRunChoose_JSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{json: true}, "\r\r\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}

	if env.stdout.Len() != 0 {
		t.Errorf("menu written to stdout with --json:\n%s", env.stdout.String())
	}
	if !strings.Contains(env.stderr.String(), "All done!") {
		t.Errorf("menu not written to stderr:\n%s", env.stderr.String())
	}

	var sels []prompt.Selection
	if err := json.Unmarshal(env.data.Bytes(), &sels); err != nil {
		t.Fatalf("invalid JSON %q: %v", env.data.String(), err)
	}
	want := []prompt.Selection{{ID: 1, Value: "Vanilla"}, {ID: 2, Value: "JavaScript"}, {ID: 3, Value: "Vanilla"}}
	if len(sels) != len(want) {
		t.Fatalf("selections = %v, want %v", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Errorf("selection %d = %v, want %v", i, sels[i], want[i])
		}
	}
}

func TestRunChoose_CancelledIsNotAnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
	}{
		{"escape", "j\x1b"},
		{"ctrl+c", "j\x03"},
		{"input closed", "j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, config.Default())
			if err := env.run(runOptions{json: true}, tt.script); err != nil {
				t.Fatalf("runChoose() error = %v", err)
			}
			if env.data.Len() != 0 {
				t.Errorf("selections printed after cancel: %q", env.data.String())
			}
			if strings.Contains(env.stderr.String(), "You selected") {
				t.Errorf("selection recorded after cancel:\n%s", env.stderr.String())
			}
		})
	}
}

func TestRunChoose_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty file", "", prompt.ErrNoQuestions},
		{"no choices", "[[question]]\nid = 1\nprompt = \"A\"\nchoices = []", prompt.ErrNoChoices},
		{
			"duplicate id",
			"[[question]]\nid = 1\nprompt = \"A\"\nchoices = [\"x\"]\n[[question]]\nid = 1\nprompt = \"B\"\nchoices = [\"y\"]",
			prompt.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, config.Default())
			err := env.run(runOptions{file: writeQuestions(t, tt.content)}, "\r")

			var cfgErr *prompt.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("runChoose() error = %v, want *prompt.ConfigurationError", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("runChoose() error = %v, want %v", err, tt.want)
			}
			if env.stdout.Len() != 0 {
				t.Errorf("menu rendered for invalid questions:\n%s", env.stdout.String())
			}
		})
	}
}

func TestRunChoose_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts runOptions
		want string
	}{
		{"frontend", runOptions{frontend: "gui"}, "invalid frontend"},
		{"marker", runOptions{marker: "> "}, "invalid marker"},
		{"border", runOptions{border: "=-"}, "invalid border"},
		{"missing file", runOptions{file: "/nonexistent/q.toml"}, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, config.Default())
			err := env.run(tt.opts, "\r")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("runChoose() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestRunChoose_ConfiguredQuestions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Questions = writeQuestions(t, "[[question]]\nid = 5\nprompt = \"Configured\"\nchoices = [\"yes\"]")
	env := newTestEnv(t, cfg)

	if err := env.run(runOptions{}, "\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "- Configured -> yes") {
		t.Errorf("configured question file not used:\n%s", env.stdout.String())
	}
}

func TestRunChoose_Save(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "answers.json")
	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{save: path}, "j\r\r\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}

	a, err := storage.LoadAnswers(path)
	if err != nil {
		t.Fatalf("LoadAnswers() error = %v", err)
	}
	if a.Source != demoSource {
		t.Errorf("source = %q, want %q", a.Source, demoSource)
	}
	if len(a.Selections) != 3 || a.Selections[0].Value != "React" {
		t.Errorf("selections = %v", a.Selections)
	}
	if len(a.Summary) != 3 || a.Summary[2] != "- CSS Library -> Vanilla" {
		t.Errorf("summary = %v", a.Summary)
	}
	if a.SavedAt.IsZero() {
		t.Error("saved_at not set")
	}
}

func TestRunChoose_SaveNotOnCancel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.json")
	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{save: path}, "\x1b"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("answers written after cancel: %v", err)
	}
}

// Tests below replace copyToClipboard and must not run in parallel.

func TestRunChoose_Copy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = orig }()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{copy: true}, "j\rj\r\r"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}

	want := "- Select Framework -> React\n- TypeScript -> TypeScript\n- CSS Library -> Vanilla"
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
}

func TestRunChoose_CopyFailureWarns(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	defer func() { copyToClipboard = orig }()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{copy: true}, "\r\r\r"); err != nil {
		t.Fatalf("runChoose() error = %v, want nil on clipboard failure", err)
	}
	if !strings.Contains(env.logs.String(), "Warning: failed to copy to clipboard: no clipboard") {
		t.Errorf("logs = %q, want clipboard warning", env.logs.String())
	}
}

func TestRunChoose_CopyNotOnCancel(t *testing.T) {
	called := false
	orig := copyToClipboard
	copyToClipboard = func(string) error {
		called = true
		return nil
	}
	defer func() { copyToClipboard = orig }()

	env := newTestEnv(t, config.Default())
	if err := env.run(runOptions{copy: true}, "\r\x1b"); err != nil {
		t.Fatalf("runChoose() error = %v", err)
	}
	if called {
		t.Error("clipboard written after cancel")
	}
}
