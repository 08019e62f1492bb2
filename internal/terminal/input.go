package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/raphi011/choose/internal/prompt"
)

// ErrInputClosed is returned by Input.Run when the stream ends before the
// session detached.
var ErrInputClosed = errors.New("input closed")

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r any) bool {
	f, ok := r.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type chunk struct {
	data []byte
	err  error
}

// Input is a prompt.InputSource reading key presses from a byte stream.
// When the stream is a terminal it is switched to raw mode for the lifetime
// of the subscription.
type Input struct {
	r        io.Reader
	handler  func(*prompt.Key)
	detached bool

	fd       int
	oldState *term.State
	err      error

	chunks chan chunk
	done   chan struct{}
}

// NewInput creates an input source reading from r (usually os.Stdin).
func NewInput(r io.Reader) *Input {
	if r == nil {
		r = os.Stdin
	}
	return &Input{
		r:    r,
		fd:   -1,
		done: make(chan struct{}),
	}
}

// Listen implements prompt.InputSource. A raw mode failure is reported by Run.
func (in *Input) Listen(handler func(*prompt.Key)) {
	in.handler = handler

	if !IsTerminal(in.r) {
		return
	}
	fd := int(in.r.(fder).Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		in.err = fmt.Errorf("enable raw mode: %w", err)
		return
	}
	in.fd = fd
	in.oldState = state
}

// Detach implements prompt.InputSource. It restores the terminal and makes
// Run return once the current key has been handled.
func (in *Input) Detach() {
	if in.detached {
		return
	}
	in.detached = true
	in.restore()
}

// Raw reports whether the terminal is currently in raw mode.
func (in *Input) Raw() bool {
	return in.oldState != nil
}

// Detached reports whether the subscriber detached.
func (in *Input) Detached() bool {
	return in.detached
}

func (in *Input) restore() {
	if in.oldState == nil {
		return
	}
	_ = term.Restore(in.fd, in.oldState)
	in.oldState = nil
}

// pump performs the blocking reads. A read pending on a terminal cannot be
// interrupted, so the goroutine may outlive Run until the next key arrives.
func (in *Input) pump() {
	buf := make([]byte, 256)
	for {
		n, err := in.r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			select {
			case in.chunks <- chunk{data: data}:
			case <-in.done:
				return
			}
		}
		if err != nil {
			select {
			case in.chunks <- chunk{err: err}:
			case <-in.done:
			}
			return
		}
	}
}

// escTimeout is how long an unfinished escape sequence waits for the rest of
// its bytes before it is read as the escape key.
const escTimeout = 50 * time.Millisecond

// Run is the event loop: it reads the stream and delivers decoded keys to
// the subscribed handler, one at a time, on the calling goroutine. It returns
// nil once the handler detaches, ErrInputClosed if the stream ends first, or
// the context error if ctx is cancelled.
//
// A sequence such as "ESC [ B" may be split across reads. Its first bytes
// are held back until the rest arrives, the stream ends or escTimeout
// passes; only then is a lone ESC delivered as the escape key.
//
// Ending early, through ErrInputClosed or ctx, only detaches the input and
// restores the terminal. The subscriber keeps its state; a prompt.Session
// stays Active until the caller stops it.
func (in *Input) Run(ctx context.Context) error {
	if in.handler == nil {
		return errors.New("input has no listener")
	}
	if in.err != nil {
		return in.err
	}
	defer close(in.done)
	defer in.restore()

	in.chunks = make(chan chunk)
	go in.pump()

	var (
		pending []byte
		flush   <-chan time.Time
	)
	for !in.detached {
		select {
		case <-ctx.Done():
			in.Detach()
			return ctx.Err()
		case <-flush:
			in.dispatch(pending)
			pending, flush = nil, nil
		case c := <-in.chunks:
			if c.err != nil {
				// Nothing more is coming to complete a held back sequence.
				in.dispatch(pending)
				if in.detached {
					return nil
				}
				if errors.Is(c.err, io.EOF) {
					return ErrInputClosed
				}
				return fmt.Errorf("read input: %w", c.err)
			}

			data := append(pending, c.data...)
			cut := len(data) - pendingEscape(data)
			in.dispatch(data[:cut])
			pending = slices.Clone(data[cut:])
			flush = nil
			if len(pending) > 0 {
				flush = time.After(escTimeout)
			}
		}
	}
	return nil
}

func (in *Input) dispatch(data []byte) {
	if len(data) == 0 {
		return
	}
	for _, k := range Decode(data) {
		if in.detached {
			return
		}
		in.handler(&k)
	}
}
