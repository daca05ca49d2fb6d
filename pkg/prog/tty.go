package prog

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned by [RequireTTY] when the standard input or
// output is not connected to a terminal.
var ErrNotTerminal = errors.New("the terminal demos need stdin and stdout connected to a terminal")

// RequireTTY returns an error unless both fds[0] and fds[1] are terminals.
// Interactive subprograms call this before starting the UI, so that running
// them from a pipe fails with a readable message instead of garbled output.
func RequireTTY(fds [3]*os.File) error {
	if !isATTY(fds[0]) || !isATTY(fds[1]) {
		return ErrNotTerminal
	}
	return nil
}

func isATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
