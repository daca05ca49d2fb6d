package steep_test

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/steep"
)

// ticker counts ticks and notifies its parent when it reaches its goal.
type ticker struct{ n, goal int }

type tickMsg struct{}

type goalMsg struct{ n int }

func (t ticker) Init() tea.Cmd { return nil }

func (t ticker) Update(msg tea.Msg) steep.Effect[ticker] {
	if _, ok := msg.(tickMsg); ok {
		t.n++
		if t.n == t.goal {
			return steep.Batch(steep.Put(t), steep.Emit[ticker](goalMsg{t.n}))
		}
		return steep.Put(t)
	}
	return steep.Unhandled[ticker]()
}

func (t ticker) View() string { return fmt.Sprintf("%d/%d", t.n, t.goal) }

// dash embeds a ticker. It never looks at tickMsg itself; it only reacts to
// the goalMsg notifications the ticker chooses to emit.
type dash struct {
	ticker ticker
	status string
}

// tickerMsg envelops messages from the ticker's commands.
type tickerMsg struct{ msg tea.Msg }

func (d dash) Init() tea.Cmd { return nil }

func (d dash) Update(msg tea.Msg) steep.Effect[dash] {
	if wrapped, ok := msg.(tickerMsg); ok {
		msg = wrapped.msg
	}
	return steep.Fold(d, d.ticker.Update(msg), steep.FoldSpec[ticker, dash]{
		Put:  func(d dash, t ticker) dash { d.ticker = t; return d },
		Wrap: func(msg tea.Msg) tea.Msg { return tickerMsg{msg} },
		OnEmit: func(d dash, out tea.Msg) steep.Effect[dash] {
			if goal, ok := out.(goalMsg); ok {
				d.status = fmt.Sprintf("reached %d", goal.n)
				return steep.Put(d)
			}
			return steep.None[dash]()
		},
	})
}

func (d dash) View() string { return d.ticker.View() + " " + d.status }

func ExampleFold() {
	d := dash{ticker: ticker{goal: 2}}
	for i := 0; i < 2; i++ {
		d, _ = steep.Apply(d, d.Update(tickMsg{}))
	}
	fmt.Println(d.View())
	// Output: 2/2 reached 2
}
