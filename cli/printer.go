package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer is where user-visible output goes.
// It writes to STDERR unless redirected.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	if writer == nil {
		writer = io.Discard
	}
	p.out = writer
}

// Writer returns the current output destination.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
