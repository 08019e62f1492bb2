// Package questions provides question sets for the prompt session: the
// built-in demo, TOML question files and fuzzy filtering by prompt.
package questions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/choose/internal/prompt"
)

// Demo returns the built-in question set used when no file is configured.
func Demo() []prompt.Question {
	return []prompt.Question{
		{ID: 1, Prompt: "Select Framework", Choices: []string{"Vanilla", "React", "Vue"}},
		{ID: 2, Prompt: "TypeScript", Choices: []string{"JavaScript", "TypeScript"}},
		{ID: 3, Prompt: "CSS Library", Choices: []string{"Vanilla", "Emotion", "Tailwind"}},
	}
}

type file struct {
	Question []prompt.Question `toml:"question"`
}

// Load reads a question file of [[question]] tables:
//
//	[[question]]
//	id = 1
//	prompt = "Select Framework"
//	choices = ["Vanilla", "React", "Vue"]
//
// Unknown keys are rejected. Whether the set is usable (non-empty, unique
// ids, choices present) is checked by prompt.New.
func Load(path string) ([]prompt.Question, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("question file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to parse question file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in question file %s: %s", path, strings.Join(keys, ", "))
	}

	return f.Question, nil
}

// Filter returns the questions whose prompt fuzzy-matches pattern, best
// match first. An empty pattern returns qs unchanged.
func Filter(qs []prompt.Question, pattern string) []prompt.Question {
	if pattern == "" {
		return qs
	}

	prompts := make([]string, len(qs))
	for i, q := range qs {
		prompts[i] = q.Prompt
	}

	matches := fuzzy.Find(pattern, prompts)
	result := make([]prompt.Question, 0, len(matches))
	for _, m := range matches {
		result = append(result, qs[m.Index])
	}
	return result
}
