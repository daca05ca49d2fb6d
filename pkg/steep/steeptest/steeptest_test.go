package steeptest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/steeptui/steep/pkg/steep"
)

// pulse asks for another beat from each beat's message, so it advances one
// beat per RunPending generation.
type pulse struct{ beats int }

type (
	beatMsg  struct{}
	beatNote struct{ n int }
)

func beat() tea.Msg { return beatMsg{} }

func (p pulse) Init() tea.Cmd { return beat }

func (p pulse) Update(msg tea.Msg) steep.Effect[pulse] {
	switch msg.(type) {
	case beatMsg:
		p.beats++
		return steep.Batch(
			steep.Put(p),
			steep.Emit[pulse](beatNote{p.beats}),
			steep.Do[pulse](beat),
		)
	case tea.KeyMsg:
		return steep.Quit[pulse]()
	}
	return steep.Unhandled[pulse]()
}

func (p pulse) View() string { return fmt.Sprint(p.beats) }

func TestFixture_CollectsInitWithoutRunning(t *testing.T) {
	f := New(t, pulse{})
	if f.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", f.Pending())
	}
	if f.Model().beats != 0 {
		t.Errorf("init command ran before RunPending")
	}
}

func TestFixture_RunPendingRunsOneGeneration(t *testing.T) {
	f := New(t, pulse{})
	f.RunPending()
	if f.Model().beats != 1 {
		t.Errorf("beats = %d after one generation, want 1", f.Model().beats)
	}
	// The beat handler re-armed itself; the new command must be pending,
	// not run.
	if f.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", f.Pending())
	}
	f.RunPending()
	if f.Model().beats != 2 {
		t.Errorf("beats = %d after two generations, want 2", f.Model().beats)
	}
}

func TestFixture_CollectsEmits(t *testing.T) {
	f := New(t, pulse{})
	f.RunPending()
	f.RunPending()
	want := []tea.Msg{beatNote{1}, beatNote{2}}
	if diff := cmp.Diff(want, f.Emitted(), cmp.AllowUnexported(beatNote{})); diff != "" {
		t.Errorf("emits (-want +got):\n%s", diff)
	}
}

func TestFixture_SendAndQuit(t *testing.T) {
	f := New(t, pulse{})
	if f.Quit() {
		t.Fatalf("quit before any input")
	}
	f.SendKey(tea.KeyEnter)
	if !f.Quit() {
		t.Errorf("quit request was not recorded")
	}
}

func TestFixture_SendDropsUnhandled(t *testing.T) {
	f := New(t, pulse{})
	f.Send("garbage")
	if f.Model().beats != 0 || f.Quit() {
		t.Errorf("unhandled message changed the component")
	}
}

func TestFixture_ViewAndSendText(t *testing.T) {
	f := New(t, pulse{})
	f.RunPending()
	if got := f.View(); got != "1" {
		t.Errorf("View() = %q, want 1", got)
	}
	// Runes are keys too; pulse quits on any key.
	f.SendText("x")
	if !f.Quit() {
		t.Errorf("rune key was not delivered")
	}
}
