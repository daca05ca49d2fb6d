// Package steeptest provides facilities for testing steep components.
package steeptest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/steep"
)

// Fixture drives a component without a terminal or a [tea.Program].
//
// A note on the nature of the fixture: the real event loop is a continuously
// running push system, where commands run on goroutines and their messages
// arrive whenever they arrive. The fixture is an on-demand pull system:
// [Fixture.Send] applies updates synchronously, and commands do not run
// until [Fixture.RunPending] is called. Each RunPending call runs exactly
// one generation of commands, so a component that re-arms a command from its
// own command's message, like a connection reader, advances one message per
// call instead of looping.
type Fixture[M steep.Comp[M]] struct {
	t       *testing.T
	model   M
	pending []tea.Cmd
	emitted []tea.Msg
	quit    bool
}

// New returns a Fixture running the given component. The component's Init
// command is collected but, like all commands, does not run until
// [Fixture.RunPending].
func New[M steep.Comp[M]](t *testing.T, m M) *Fixture[M] {
	f := &Fixture[M]{t: t, model: m}
	f.enqueue(m.Init())
	return f
}

// Send applies the component's update for each message in turn. Messages the
// component reports unhandled are dropped, as the runtime would drop them.
func (f *Fixture[M]) Send(msgs ...tea.Msg) {
	f.t.Helper()
	for _, msg := range msgs {
		model, res := steep.Apply(f.model, f.model.Update(msg))
		if res.Unhandled {
			continue
		}
		f.model = model
		f.pending = append(f.pending, res.Cmds...)
		f.emitted = append(f.emitted, res.Emitted...)
		f.quit = f.quit || res.Quit
	}
}

// SendText sends each rune of s as a key press.
func (f *Fixture[M]) SendText(s string) {
	f.t.Helper()
	for _, r := range s {
		f.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a press of a special key.
func (f *Fixture[M]) SendKey(k tea.KeyType) {
	f.t.Helper()
	f.Send(tea.KeyMsg{Type: k})
}

// RunPending runs the commands collected so far and feeds their messages
// back into the component. Commands caused by those messages are collected
// again but not run.
func (f *Fixture[M]) RunPending() {
	f.t.Helper()
	cmds := f.pending
	f.pending = nil
	for _, cmd := range cmds {
		f.feed(cmd())
	}
}

func (f *Fixture[M]) feed(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil {
				f.feed(cmd())
			}
		}
	case tea.QuitMsg:
		f.quit = true
	default:
		f.Send(msg)
	}
}

func (f *Fixture[M]) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		f.pending = append(f.pending, cmd)
	}
}

// Model returns the component in its current state.
func (f *Fixture[M]) Model() M { return f.model }

// View renders the component.
func (f *Fixture[M]) View() string { return f.model.View() }

// Emitted returns the out-messages the component has emitted so far. A root
// component under test normally emits nothing; embedding is what interprets
// emits, so this surfaces what an enclosing parent would have seen.
func (f *Fixture[M]) Emitted() []tea.Msg { return f.emitted }

// Pending returns the number of commands collected and not yet run.
func (f *Fixture[M]) Pending() int { return len(f.pending) }

// Quit reports whether the component has requested to quit.
func (f *Fixture[M]) Quit() bool { return f.quit }
