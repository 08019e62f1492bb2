package prompt

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ConfigurationError.
var (
	ErrNoQuestions = errors.New("no questions")
	ErrNoChoices   = errors.New("question has no choices")
	ErrDuplicateID = errors.New("duplicate question id")
)

// ConfigurationError is returned by New when the question list violates the
// construction contract. No session is created.
type ConfigurationError struct {
	Index int // 0-based position of the offending question, -1 for the whole list
	ID    int
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid questions: %v", e.Err)
	}
	return fmt.Sprintf("invalid question %d (id %d): %v", e.Index+1, e.ID, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InconsistentSelectionError means a recorded selection points at a question
// id the session does not know. It can only happen if the session state was
// corrupted.
type InconsistentSelectionError struct {
	ID int
}

func (e *InconsistentSelectionError) Error() string {
	return fmt.Sprintf("selection references unknown question id %d", e.ID)
}
