package steep

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Runner adapts a [Comp] to [tea.Model], so that a component tree can run
// under a stock [tea.Program]. It holds the current state of the component
// and applies the effect of each update to it.
type Runner[M Comp[M]] struct {
	model M
}

// NewRunner returns a Runner for the given component.
func NewRunner[M Comp[M]](m M) Runner[M] {
	return Runner[M]{model: m}
}

// Model returns the component in its current state. It is how the final
// state is retrieved after [tea.Program.Run] returns.
func (r Runner[M]) Model() M { return r.model }

func (r Runner[M]) Init() tea.Cmd { return r.model.Init() }

func (r Runner[M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, res := Apply(r.model, r.model.Update(msg))
	r.model = m
	if res.Unhandled {
		// There is no parent left to fall back to. The only default
		// behavior at the top is that ctrl+c still quits.
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
			return r, tea.Quit
		}
		return r, nil
	}
	for _, out := range res.Emitted {
		logger.Printf("dropped %T emitted at the top of the tree", out)
	}
	cmds := res.Cmds
	if res.Quit {
		cmds = append(cmds, tea.Quit)
	}
	return r, tea.Batch(cmds...)
}

func (r Runner[M]) View() string { return r.model.View() }

// NewProgram returns a [tea.Program] running the given component.
func NewProgram[M Comp[M]](m M, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(NewRunner(m), opts...)
}
