// Package console implements the text interaction boundary over a pair of
// streams, normally stdin and stdout.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Terminal reads answers line by line from in and writes messages to out.
type Terminal struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// NewTerminal wraps in and out. When in is not an interactive terminal the
// answers read are echoed after their prompt so transcripts stay readable.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:   bufio.NewReader(in),
		out:  out,
		echo: !isTerminal(in),
	}
}

// PromptLine writes message and reads one line. The trailing newline is
// removed. ok is false when the input is exhausted before any text is read.
func (t *Terminal) PromptLine(message string) (string, bool) {
	fmt.Fprintf(t.out, "%s ", message)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return "", false
	}

	line = strings.TrimRight(line, "\r\n")
	if t.echo {
		fmt.Fprintln(t.out, line)
	}
	return line, true
}

// Notify writes message followed by a newline.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
