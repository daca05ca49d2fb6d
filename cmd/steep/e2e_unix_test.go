//go:build !windows

package main

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/steeptui/steep/pkg/prog"
	"github.com/steeptui/steep/pkg/prog/progtest"
	"github.com/steeptui/steep/pkg/store"
	"github.com/steeptui/steep/pkg/testutil"
)

// Runs the counter demo on a real pseudo-terminal: press + once, quit with
// q, and check that the count was persisted.
func TestCounterDemo_InPty(t *testing.T) {
	testutil.InTempDir(t)
	term := progtest.SetupTerminal(t)

	stderr, err := os.Create("stderr")
	if err != nil {
		t.Fatal(err)
	}
	defer stderr.Close()

	exitCh := make(chan int, 1)
	go func() {
		exitCh <- prog.Run(term.Fds(stderr),
			[]string{"steep", "-counter", "-db", "db", "-config", "no-config.yaml"},
			composite())
	}()

	screen := watchScreen(term.PTY)
	screen.await(t, "count: 0")
	term.PTY.WriteString("+")
	screen.await(t, "count: 1")
	term.PTY.WriteString("q")

	select {
	case exit := <-exitCh:
		if exit != 0 {
			content, _ := os.ReadFile("stderr")
			t.Fatalf("exit %v, stderr %q", exit, content)
		}
	case <-time.After(testutil.Scaled(10 * time.Second)):
		t.Fatalf("the program did not exit after q")
	}

	st, err := store.NewStore("db")
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st.Close()
	if v, err := st.Counter("counter"); v != 1 || err != nil {
		t.Errorf("stored count = (%v, %v), want (1, nil)", v, err)
	}
}

// screenWatcher accumulates everything the program writes to the terminal.
type screenWatcher struct {
	mu      sync.Mutex
	content strings.Builder
}

func watchScreen(pty *os.File) *screenWatcher {
	w := &screenWatcher{}
	go func() {
		var buf [4096]byte
		for {
			n, err := pty.Read(buf[:])
			if n > 0 {
				w.mu.Lock()
				w.content.Write(buf[:n])
				w.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	return w
}

// await waits until text has appeared on the screen.
func (w *screenWatcher) await(t *testing.T, text string) {
	t.Helper()
	deadline := time.Now().Add(testutil.Scaled(10 * time.Second))
	for time.Now().Before(deadline) {
		if strings.Contains(w.get(), text) {
			return
		}
		time.Sleep(testutil.Scaled(10 * time.Millisecond))
	}
	t.Fatalf("timed out waiting for %q on the screen; screen so far:\n%q",
		text, w.get())
}

func (w *screenWatcher) get() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content.String()
}
