package prompt

import "fmt"

// Question is a single menu shown to the user.
type Question struct {
	ID      int      `toml:"id" json:"id"`
	Prompt  string   `toml:"prompt" json:"prompt"`
	Choices []string `toml:"choices" json:"choices"`
}

// Selection records the choice confirmed for a question.
type Selection struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// String implements fmt.Stringer for debugging.
func (s Selection) String() string {
	return fmt.Sprintf("%d=%s", s.ID, s.Value)
}

// validateQuestions checks the construction contract of a session.
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return &ConfigurationError{Index: -1, Err: ErrNoQuestions}
	}

	seen := make(map[int]int, len(questions))
	for i, q := range questions {
		if len(q.Choices) == 0 {
			return &ConfigurationError{Index: i, ID: q.ID, Err: ErrNoChoices}
		}
		if first, ok := seen[q.ID]; ok {
			return &ConfigurationError{
				Index: i,
				ID:    q.ID,
				Err:   fmt.Errorf("%w (first used by question %d)", ErrDuplicateID, first+1),
			}
		}
		seen[q.ID] = i
	}
	return nil
}

// cloneQuestions deep-copies questions so the session owns its input.
func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Choices: append([]string(nil), q.Choices...),
		}
	}
	return out
}
