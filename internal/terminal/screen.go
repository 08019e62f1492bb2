package terminal

import (
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Screen is a prompt.OutputSink writing to a terminal with ANSI sequences.
type Screen struct {
	w    io.Writer
	eol  string
	ansi bool
	err  error
}

// NewScreen creates a screen writing to w. Set raw when the input terminal
// is in raw mode: output post-processing is off then, so lines need an
// explicit carriage return.
func NewScreen(w io.Writer, raw bool) *Screen {
	s := &Screen{w: w, eol: "\n", ansi: true}
	if raw {
		s.eol = "\r\n"
	}
	return s
}

// WithoutClear disables the clear sequence, for output that is not a
// terminal. Frames are then separated by a blank line.
func (s *Screen) WithoutClear() *Screen {
	s.ansi = false
	return s
}

// WriteLine implements prompt.OutputSink.
func (s *Screen) WriteLine(line string) {
	s.write(line + s.eol)
}

// Clear implements prompt.OutputSink.
func (s *Screen) Clear() {
	if !s.ansi {
		s.write(s.eol)
		return
	}
	s.write(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

// Err returns the first write error.
func (s *Screen) Err() error {
	return s.err
}

func (s *Screen) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
