package counters

import (
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/counter"
	"github.com/steeptui/steep/pkg/prog"
	"github.com/steeptui/steep/pkg/steep"
)

// Program is the counter-list demo subprogram, selected by -counters.
type Program struct {
	run bool
	n   int
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "counters", false, "Run the counter-list demo")
	fs.IntVar(&p.n, "n", 1,
		"Number of counters the counter-list demo starts with")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	if p.n < 0 {
		return prog.BadUsage("-n must not be negative")
	}
	if err := prog.RequireTTY(fds); err != nil {
		return err
	}

	var app App
	for i := 0; i < p.n; i++ {
		app.lastID++
		// Counters have a nil Init, so the returned command can be dropped.
		l, _ := app.Counters.Insert("c"+strconv.Itoa(app.lastID), counter.New(0, 1))
		app.Counters = l
	}
	_, err := steep.NewProgram(app,
		tea.WithInput(fds[0]), tea.WithOutput(fds[1])).Run()
	return err
}
