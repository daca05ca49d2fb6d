//go:build !windows

package progtest

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// Terminal is a pseudo-terminal pair for driving interactive subprograms in
// tests. The subprogram under test gets TTY as its stdin and stdout, while
// the test writes keystrokes to, and reads screen output from, PTY.
type Terminal struct {
	PTY *os.File
	TTY *os.File
}

// SetupTerminal opens a pseudo-terminal sized 80x24 and arranges for both
// ends to be closed during cleanup. It skips the test if the environment
// cannot allocate a pty (some containers cannot).
func SetupTerminal(t *testing.T) Terminal {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	err = pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("cannot size pty: %v", err)
	}
	return Terminal{PTY: ptmx, TTY: tty}
}

// Fds returns the three standard file descriptors an interactive subprogram
// should be run with: the terminal for stdin and stdout, and the given file
// for stderr.
func (term Terminal) Fds(stderr *os.File) [3]*os.File {
	return [3]*os.File{term.TTY, term.TTY, stderr}
}
