package questions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/choose/internal/prompt"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDemo(t *testing.T) {
	t.Parallel()

	qs := Demo()
	if _, err := prompt.New(qs); err != nil {
		t.Fatalf("demo set rejected: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("len(Demo()) = %d, want 3", len(qs))
	}
	if qs[0].Prompt != "Select Framework" || qs[2].Choices[2] != "Tailwind" {
		t.Errorf("unexpected demo set: %+v", qs)
	}

	// Each call returns an independent copy.
	qs[0].Choices[0] = "changed"
	if Demo()[0].Choices[0] != "Vanilla" {
		t.Error("Demo() shares storage between calls")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
[[question]]
id = 10
prompt = "Database"
choices = ["Postgres", "SQLite"]

[[question]]
id = 20
prompt = "Cache"
choices = ["None", "Redis"]
`)

	qs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	if qs[0].ID != 10 || qs[0].Prompt != "Database" || qs[0].Choices[1] != "SQLite" {
		t.Errorf("qs[0] = %+v", qs[0])
	}
	if qs[1].ID != 20 || qs[1].Choices[1] != "Redis" {
		t.Errorf("qs[1] = %+v", qs[1])
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[[question]\nid = 1", "failed to parse"},
		{"unknown key", "[[question]]\nid = 1\nprompt = \"A\"\nchoice = [\"x\"]", "question.choice"},
		{"wrong type", "[[question]]\nid = \"one\"", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeFile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestLoad_EmptyFileIsRejectedByPrompt(t *testing.T) {
	t.Parallel()

	qs, err := Load(writeFile(t, "# nothing here\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := prompt.New(qs); !errors.Is(err, prompt.ErrNoQuestions) {
		t.Errorf("prompt.New() error = %v, want ErrNoQuestions", err)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{1, 2, 3}},
		{"css", []int{3}},
		{"frame", []int{1}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			got := Filter(Demo(), tt.pattern)
			ids := make([]int, len(got))
			for i, q := range got {
				ids[i] = q.ID
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("Filter(%q) ids = %v, want %v", tt.pattern, ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("Filter(%q) ids = %v, want %v", tt.pattern, ids, tt.want)
				}
			}
		})
	}
}
