// Package counter implements the counter demo: a [Model] holding a single
// number, and an [App] framing it with a status line and quit handling. The
// subprogram persists the count across runs.
package counter

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/steep"
)

// Model is a counter. It understands [IncMsg], [DecMsg] and [SetStepMsg],
// and binds keys itself: + and up increment, - and down decrement, a digit
// sets the step, r resets and emits [ResetMsg] to the parent.
type Model struct {
	// Value is the current count.
	Value int
	// Step is how much the count changes by.
	Step int
}

// IncMsg makes the counter go up by its step.
type IncMsg struct{}

// DecMsg makes the counter go down by its step.
type DecMsg struct{}

// SetStepMsg changes how much the counter changes by.
type SetStepMsg struct{ Step int }

// ResetMsg is emitted to the parent when the counter is reset, carrying the
// value it had.
type ResetMsg struct{ Old int }

// New returns a counter starting at value and changing by step.
func New(value, step int) Model { return Model{Value: value, Step: step} }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) steep.Effect[Model] {
	switch msg := msg.(type) {
	case IncMsg:
		m.Value += m.Step
		return steep.Put(m)
	case DecMsg:
		m.Value -= m.Step
		return steep.Put(m)
	case SetStepMsg:
		m.Step = msg.Step
		return steep.Put(m)
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "+", "up":
			return m.Update(IncMsg{})
		case "-", "down":
			return m.Update(DecMsg{})
		case "r":
			old := m.Value
			m.Value = 0
			return steep.Batch(
				steep.Put(m), steep.Emit[Model](ResetMsg{Old: old}))
		default:
			if len(s) == 1 && '1' <= s[0] && s[0] <= '9' {
				return m.Update(SetStepMsg{Step: int(s[0] - '0')})
			}
		}
	}
	return steep.Unhandled[Model]()
}

func (m Model) View() string { return strconv.Itoa(m.Value) }
