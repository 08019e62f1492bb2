package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("broken pipe")
}

func TestScreen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     bool
		noClear bool
		want    string
	}{
		{
			name: "cooked terminal",
			want: ansi.EraseEntireScreen + ansi.CursorHomePosition + "a\nb\n",
		},
		{
			name: "raw terminal uses crlf",
			raw:  true,
			want: ansi.EraseEntireScreen + ansi.CursorHomePosition + "a\r\nb\r\n",
		},
		{
			name:    "pipe separates frames",
			noClear: true,
			want:    "\na\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewScreen(&buf, tt.raw)
			if tt.noClear {
				s = s.WithoutClear()
			}
			s.Clear()
			s.WriteLine("a")
			s.WriteLine("b")

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if s.Err() != nil {
				t.Errorf("Err() = %v", s.Err())
			}
		})
	}
}

func TestScreen_KeepsFirstError(t *testing.T) {
	t.Parallel()

	w := &failingWriter{}
	s := NewScreen(w, false)
	s.Clear()
	s.WriteLine("ignored")

	if s.Err() == nil {
		t.Fatal("Err() = nil, want write error")
	}
	if w.calls != 1 {
		t.Errorf("writes after error = %d, want 1 attempt total", w.calls)
	}
}
