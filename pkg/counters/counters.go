// Package counters implements the counter-list demo: any number of counters
// in a [steep.List], with keys to add and delete counters and to move focus
// between them. The focused counter gets the counter keys; the list frame
// binds its own keys on top without knowing the counter's.
package counters

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/counter"
	"github.com/steeptui/steep/pkg/steep"
)

const statusTimeout = 2 * time.Second

// App is the counter-list demo application.
type App struct {
	Counters steep.List[counter.Model]
	lastID   int
	status   string
}

// listMsg envelopes messages destined for the embedded list.
type listMsg struct{ msg tea.Msg }

func wrapList(msg tea.Msg) tea.Msg { return listMsg{msg} }

type clearStatusMsg struct{}

func (a App) Init() tea.Cmd { return steep.WrapCmd(a.Counters.Init(), wrapList) }

func (a App) Update(msg tea.Msg) steep.Effect[App] {
	switch msg := msg.(type) {
	case listMsg:
		return a.fold(a.Counters.Update(msg.msg))
	case clearStatusMsg:
		a.status = ""
		return steep.Put(a)
	}
	eff := a.fold(a.Counters.Update(msg))
	if !steep.IsUnhandled(eff) {
		return eff
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return steep.Unhandled[App]()
	}
	switch key.String() {
	case "a":
		a.lastID++
		l, cmd := a.Counters.Insert("c"+strconv.Itoa(a.lastID), counter.New(0, 1))
		a.Counters = l
		return steep.Batch(steep.Put(a),
			steep.Do[App](steep.WrapCmd(cmd, wrapList)))
	case "d":
		focus := a.Counters.Focus()
		if focus == "" {
			return steep.None[App]()
		}
		a.Counters = a.Counters.Remove(focus)
		a.status = focus + " deleted"
		return steep.Batch(steep.Put(a),
			steep.Do[App](clearStatusAfter(statusTimeout)))
	case "tab":
		a.Counters = a.Counters.FocusNext()
		return steep.Put(a)
	case "shift+tab":
		a.Counters = a.Counters.FocusPrev()
		return steep.Put(a)
	case "q":
		return steep.Quit[App]()
	}
	return steep.Unhandled[App]()
}

func (a App) fold(eff steep.Effect[steep.List[counter.Model]]) steep.Effect[App] {
	return steep.Fold(a, eff, steep.FoldSpec[steep.List[counter.Model], App]{
		Put: func(a App, l steep.List[counter.Model]) App {
			a.Counters = l
			return a
		},
		Wrap: wrapList,
		OnEmit: func(a App, out tea.Msg) steep.Effect[App] {
			keyed, ok := out.(steep.KeyedMsg)
			if !ok {
				return steep.None[App]()
			}
			reset, ok := keyed.Msg.(counter.ResetMsg)
			if !ok {
				return steep.None[App]()
			}
			a.status = fmt.Sprintf("%s reset (was %d)", keyed.Key, reset.Old)
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
	focus := a.Counters.Focus()
	total := 0
	a.Counters.Each(func(key string, c counter.Model) {
		marker := "  "
		if key == focus {
			marker = "> "
		}
		fmt.Fprintf(&sb, "%s%s: %s\n", marker, key, c.View())
		total += c.Value
	})
	if a.Counters.Len() == 0 {
		sb.WriteString("no counters; press a to add one\n")
	}
	fmt.Fprintf(&sb, "sum: %d\n", total)
	if a.status != "" {
		sb.WriteString(a.status + "\n")
	}
	sb.WriteString("[a] add  [d] delete  [tab] focus  [q] quit")
	return sb.String()
}
