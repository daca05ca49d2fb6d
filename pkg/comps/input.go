// Package comps provides components shared by the steep demo applications.
package comps

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/steep"
)

// Input is a single-line text input. It consumes printable keys, backspace
// and ctrl+u for editing, and enter to submit; it leaves every other message
// unhandled so that the embedding component can bind them.
type Input struct {
	// Prompt is printed before the content.
	Prompt string
	// Content is the text typed so far.
	Content string
}

// SubmitMsg is emitted to the parent when enter is pressed. The input clears
// itself at the same time.
type SubmitMsg struct{ Text string }

func (in Input) Init() tea.Cmd { return nil }

func (in Input) Update(msg tea.Msg) steep.Effect[Input] {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return steep.Unhandled[Input]()
	}
	switch key.Type {
	case tea.KeyRunes:
		in.Content += string(key.Runes)
		return steep.Put(in)
	case tea.KeySpace:
		in.Content += " "
		return steep.Put(in)
	case tea.KeyBackspace:
		if in.Content != "" {
			_, n := utf8.DecodeLastRuneInString(in.Content)
			in.Content = in.Content[:len(in.Content)-n]
		}
		return steep.Put(in)
	case tea.KeyCtrlU:
		in.Content = ""
		return steep.Put(in)
	case tea.KeyEnter:
		text := in.Content
		in.Content = ""
		return steep.Batch(
			steep.Put(in), steep.Emit[Input](SubmitMsg{Text: text}))
	}
	return steep.Unhandled[Input]()
}

func (in Input) View() string { return in.Prompt + in.Content }
