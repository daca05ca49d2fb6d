// Package progtest provides utilities for testing subprograms.
//
// This package intentionally has no dependency on the steep component
// packages, so that any [prog.Program] implementation can use it.
package progtest

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/steeptui/steep/pkg/prog"
)

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args)
			if r.exit != c.want.exit {
				t.Errorf("got exit %v, want %v", r.exit, c.want.exit)
			}
			checkOutput(t, "stdout", r.stdout, c.want.stdout)
			checkOutput(t, "stderr", r.stderr, c.want.stderr)
		})
	}
}

// ThatSteep returns a new Case with the given CLI arguments.
func ThatSteep(args ...string) Case {
	return Case{args: append([]string{"steep"}, args...)}
}

// Case is a test case that can be run against a [prog.Program].
type Case struct {
	args []string
	want result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

// DoesNothing returns an altered Case that requires the program to exit with
// 0 and write nothing to stdout or stderr.
func (c Case) DoesNothing() Case {
	return c.ExitsWith(0).WritesStdout("").WritesStderr("")
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program's
// stdout to contain the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program's
// stderr to contain the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.content) {
			t.Errorf("got %v %q, want string containing %q", name, got, want.content)
		}
	} else if got != want.content {
		t.Errorf("got %v %q, want %q", name, got, want.content)
	}
}

type runResult struct {
	exit   int
	stdout string
	stderr string
}

func run(p prog.Program, args []string) runResult {
	stdin, err := os.Open(os.DevNull)
	if err != nil {
		panic(err)
	}
	defer stdin.Close()

	stdout, getStdout := capturedFile()
	stderr, getStderr := capturedFile()
	exit := prog.Run([3]*os.File{stdin, stdout, stderr}, args, p)
	return runResult{exit, getStdout(), getStderr()}
}

// capturedFile returns a writable file and a function that closes the file
// and returns everything that has been written to it.
func capturedFile() (*os.File, func() string) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	var sb strings.Builder
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		io.Copy(&sb, r)
		r.Close()
	}()
	return w, func() string {
		w.Close()
		wg.Wait()
		return sb.String()
	}
}
