package tui

import "strings"

// Buffer is an in-memory prompt.OutputSink. It keeps the lines written since
// the last Clear.
type Buffer struct {
	lines []string
}

// WriteLine appends s as one line.
func (b *Buffer) WriteLine(s string) {
	b.lines = append(b.lines, s)
}

// Clear drops every line.
func (b *Buffer) Clear() {
	b.lines = b.lines[:0]
}

// Lines returns a copy of the current lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}
