// Package storage saves session answers as JSON files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/raphi011/choose/internal/prompt"
)

// Answers is the record written by choose --save.
type Answers struct {
	Source     string             `json:"source"` // question file, or "demo"
	SavedAt    time.Time          `json:"saved_at"`
	Selections []prompt.Selection `json:"selections"`
	Summary    []string           `json:"summary"`
}

// SaveAnswers atomically writes a as indented JSON to path, creating the
// parent directory if needed.
func SaveAnswers(path string, a Answers) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, append(data, '\n'))
}

// LoadAnswers reads a file written by SaveAnswers.
// Returns an error wrapping os.ErrNotExist if the file doesn't exist.
func LoadAnswers(path string) (Answers, error) {
	var a Answers
	data, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return a, nil
}

// writeAtomic writes to a temp file in the target directory, then renames it
// over path. Readers never see a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
