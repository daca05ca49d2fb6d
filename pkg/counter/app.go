package counter

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/steep"
)

// How long the status line stays up.
const statusTimeout = 2 * time.Second

// App frames a counter with a status line and key help. It embeds the
// counter without knowing its key bindings: messages go to the counter
// first, and the app only binds what the counter leaves unhandled.
type App struct {
	Counter Model
	status  string
}

// counterMsg envelopes messages destined for the embedded counter.
type counterMsg struct{ msg tea.Msg }

type clearStatusMsg struct{}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) steep.Effect[App] {
	switch msg := msg.(type) {
	case counterMsg:
		return a.fold(a.Counter.Update(msg.msg))
	case clearStatusMsg:
		a.status = ""
		return steep.Put(a)
	}
	eff := a.fold(a.Counter.Update(msg))
	if !steep.IsUnhandled(eff) {
		return eff
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "q" {
		return steep.Quit[App]()
	}
	return steep.Unhandled[App]()
}

func (a App) fold(eff steep.Effect[Model]) steep.Effect[App] {
	return steep.Fold(a, eff, steep.FoldSpec[Model, App]{
		Put:  func(a App, m Model) App { a.Counter = m; return a },
		Wrap: func(msg tea.Msg) tea.Msg { return counterMsg{msg} },
		OnEmit: func(a App, out tea.Msg) steep.Effect[App] {
			reset, ok := out.(ResetMsg)
			if !ok {
				return steep.None[App]()
			}
			a.status = fmt.Sprintf("reset (was %d)", reset.Old)
			return steep.Batch(steep.Put(a),
				steep.Do[App](clearStatusAfter(statusTimeout)))
		},
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (a App) View() string {
	var sb strings.Builder
	sb.WriteString("count: " + a.Counter.View())
	if a.Counter.Step != 1 {
		fmt.Fprintf(&sb, " (step %d)", a.Counter.Step)
	}
	sb.WriteString("\n")
	if a.status != "" {
		sb.WriteString(a.status + "\n")
	}
	sb.WriteString("[+/-] change  [1-9] step  [r] reset  [q] quit")
	return sb.String()
}
