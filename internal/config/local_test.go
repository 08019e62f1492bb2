package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil {
		t.Fatalf("expected nil, got %+v", local)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, LocalConfigFileName, "")

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
	if local.Banner != nil {
		t.Error("banner should be unset")
	}
}

func TestLoadLocal_AllFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, LocalConfigFileName, `
frontend = "tui"
questions = "questions.toml"
marker = ">"
border = "-"
banner = ""

[theme]
name = "dracula"
`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if local.Frontend != "tui" {
		t.Errorf("frontend = %q", local.Frontend)
	}
	if want := filepath.Join(dir, "questions.toml"); local.Questions != want {
		t.Errorf("questions = %q, want %q", local.Questions, want)
	}
	if local.Marker != ">" || local.Border != "-" {
		t.Errorf("marker/border = %q/%q", local.Marker, local.Border)
	}
	if local.Banner == nil || *local.Banner != "" {
		t.Errorf("banner = %v, want explicit empty", local.Banner)
	}
	if local.Theme.Name != "dracula" {
		t.Errorf("theme.name = %q", local.Theme.Name)
	}
}

func TestLoadLocal_AbsoluteQuestionsKept(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, LocalConfigFileName, `questions = "/srv/questions.toml"`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Questions != "/srv/questions.toml" {
		t.Errorf("questions = %q", local.Questions)
	}
}

func TestLoadLocal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"parse error", `marker = [`, "failed to parse local config"},
		{"bad frontend", `frontend = "web"`, `invalid frontend "web"`},
		{"bad marker", "marker = \"\t\"", "invalid marker"},
		{"bad border", `border = "ab"`, "invalid border"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, dir, LocalConfigFileName, tt.content)

			_, err := LoadLocal(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantErr)
			}
		})
	}
}
