package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal writes a single rewritten status line per notification when
// its output is a terminal, and falls back to plain newline-terminated
// lines otherwise (log redirected to a file, piped output, CI).
type Terminal struct {
	Out      io.Writer
	isTerm   bool
	lastLine int
}

// NewTerminal builds a Terminal sink writing to w. fd is the
// underlying file descriptor used to detect whether w is a terminal
// (pass the fd of os.Stderr or os.Stdout when w wraps one of them).
func NewTerminal(w io.Writer, fd uintptr) *Terminal {
	return &Terminal{Out: w, isTerm: term.IsTerminal(int(fd))}
}

// NewStderrTerminal builds a Terminal sink writing to os.Stderr.
func NewStderrTerminal() *Terminal {
	return NewTerminal(os.Stderr, os.Stderr.Fd())
}

// OnProgress implements Sink.
func (t *Terminal) OnProgress(kind string, current, total int, message string) {
	var line string
	switch {
	case total > 0:
		line = fmt.Sprintf("[%s] %d/%d %s", kind, current, total, message)
	case current > 0:
		line = fmt.Sprintf("[%s] %d %s", kind, current, message)
	default:
		line = fmt.Sprintf("[%s] %s", kind, message)
	}

	if t.isTerm {
		fmt.Fprintf(t.Out, "\r\x1b[K%s", line)
		t.lastLine = len(line)

		return
	}

	fmt.Fprintln(t.Out, line)
}

// Finish terminates an in-progress terminal line with a trailing
// newline. No-op when writing to a non-terminal, since those lines are
// already newline-terminated.
func (t *Terminal) Finish() {
	if t.isTerm && t.lastLine > 0 {
		fmt.Fprintln(t.Out)
		t.lastLine = 0
	}
}
