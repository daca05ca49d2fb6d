// Package chat implements the chat demo: a line-based chat over a websocket
// echo server, with the transcript persisted and replayed on the next run.
//
// The demo is deliberately a thin client: it sends lines, and displays what
// the server sends back. With the echo server from the echod package, that
// means every sent line comes back and lands in the transcript.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/comps"
	"github.com/steeptui/steep/pkg/logutil"
	"github.com/steeptui/steep/pkg/steep"
)

var logger = logutil.GetLogger("[chat] ")

// Model is the chat application. It embeds a [comps.Input] for the line
// being typed; the input gets every message first, and the model only binds
// what the input leaves unhandled.
type Model struct {
	Input comps.Input
	// Nick is prefixed to sent lines.
	Nick string
	// Transcript has the lines received so far, oldest first.
	Transcript []string
	// Status is a transient error line, empty when all is well.
	Status string
	// Height is the terminal height, learned from [tea.WindowSizeMsg].
	Height int
	// Conn is the connection the model reads from and writes to.
	Conn Conn
}

// inputMsg envelopes messages destined for the embedded input.
type inputMsg struct{ msg tea.Msg }

func (m Model) Init() tea.Cmd { return listen(m.Conn) }

func (m Model) Update(msg tea.Msg) steep.Effect[Model] {
	switch msg := msg.(type) {
	case inputMsg:
		return m.foldInput(m.Input.Update(msg.msg))
	case RecvMsg:
		m.Transcript = append(m.Transcript, msg.Line)
		return steep.Batch(steep.Put(m), steep.Do[Model](listen(m.Conn)))
	case RecvErrMsg:
		m.Status = "connection: " + msg.Err.Error()
		return steep.Put(m)
	case SendErrMsg:
		m.Status = "send: " + msg.Err.Error()
		return steep.Put(m)
	case tea.WindowSizeMsg:
		m.Height = msg.Height
		return steep.Put(m)
	}
	eff := m.foldInput(m.Input.Update(msg))
	if !steep.IsUnhandled(eff) {
		return eff
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return steep.Quit[Model]()
	}
	return steep.Unhandled[Model]()
}

func (m Model) foldInput(eff steep.Effect[comps.Input]) steep.Effect[Model] {
	return steep.Fold(m, eff, steep.FoldSpec[comps.Input, Model]{
		Put:  func(m Model, in comps.Input) Model { m.Input = in; return m },
		Wrap: func(msg tea.Msg) tea.Msg { return inputMsg{msg} },
		OnEmit: func(m Model, out tea.Msg) steep.Effect[Model] {
			submit, ok := out.(comps.SubmitMsg)
			if !ok || submit.Text == "" {
				return steep.None[Model]()
			}
			return steep.Do[Model](send(m.Conn, m.Nick+": "+submit.Text))
		},
	})
}

func (m Model) View() string {
	lines := m.Transcript
	if m.Height > 0 {
		// Leave room for the status and input lines.
		if max := m.Height - 2; max <= 0 {
			lines = nil
		} else if len(lines) > max {
			lines = lines[len(lines)-max:]
		}
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}
	if m.Status != "" {
		sb.WriteString("! " + m.Status + "\n")
	}
	sb.WriteString(m.Input.View())
	return sb.String()
}
