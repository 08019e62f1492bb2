package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rendering defaults.
const (
	DefaultMarker = "*"
	DefaultBorder = "="
	DefaultBanner = "All done!"
)

// render clears the sink and draws the current question.
func (s *Session) render() {
	s.out.Clear()
	for _, line := range s.questionLines() {
		s.out.WriteLine(line)
	}
}

// questionLines returns the framed prompt followed by the choices, with the
// highlighted choice prefixed by the marker.
func (s *Session) questionLines() []string {
	q := s.questions[s.questionIdx]
	border := strings.Repeat(s.border, utf8.RuneCountInString(q.Prompt))

	lines := make([]string, 0, len(q.Choices)+3)
	lines = append(lines, border, q.Prompt, border)
	for i, choice := range q.Choices {
		if i == s.choiceIdx {
			lines = append(lines, s.marker+" "+choice)
		} else {
			lines = append(lines, choice)
		}
	}
	return lines
}

// renderSummary clears the sink and prints the banner and every selection.
// Nothing is written if a selection cannot be matched to its question.
func (s *Session) renderSummary() error {
	lines, err := s.Summary()
	if err != nil {
		return err
	}

	s.out.Clear()
	if s.banner != "" {
		s.out.WriteLine(s.banner)
	}
	for _, line := range lines {
		s.out.WriteLine(line)
	}
	return nil
}

// Summary returns one "- <prompt> -> <value>" line per recorded selection in
// question order.
func (s *Session) Summary() ([]string, error) {
	byID := make(map[int]Selection, len(s.selections))
	for _, sel := range s.selections {
		byID[sel.ID] = sel
	}

	lines := make([]string, 0, len(s.selections))
	for _, q := range s.questions {
		sel, ok := byID[q.ID]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s -> %s", q.Prompt, sel.Value))
		delete(byID, q.ID)
	}

	// Anything left over references a question we never asked.
	for _, sel := range s.selections {
		if _, ok := byID[sel.ID]; ok {
			return nil, &InconsistentSelectionError{ID: sel.ID}
		}
	}
	return lines, nil
}
