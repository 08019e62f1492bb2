// Package output writes choose's results.
//
// Answers, question tables and config templates go to the Printer, which is
// stdout unless a test swaps it. The menu itself never goes through here: it
// is drawn on stderr whenever stdout carries --json data.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raphi011/choose/internal/prompt"
)

type ctxKey struct{}

// Printer writes command results.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer for w to ctx.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the Printer attached to ctx, or one for os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Block writes a pre-rendered block such as a table or a config template,
// adding the final newline if it is missing.
func (p *Printer) Block(s string) {
	if s == "" {
		return
	}
	io.WriteString(p.w, s)
	if !strings.HasSuffix(s, "\n") {
		io.WriteString(p.w, "\n")
	}
}

// Selections writes the confirmed answers as a JSON array of
// {"id", "value"} objects. No answers is written as [] rather than null.
func (p *Printer) Selections(sels []prompt.Selection) error {
	if sels == nil {
		sels = []prompt.Selection{}
	}
	return p.JSON(sels)
}

// JSON writes v indented by two spaces.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
