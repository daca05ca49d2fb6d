package counter

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/config"
	"github.com/steeptui/steep/pkg/prog"
	"github.com/steeptui/steep/pkg/steep"
	"github.com/steeptui/steep/pkg/store"
	"github.com/steeptui/steep/pkg/store/storedefs"
)

// Name of the persisted count in the store.
const counterName = "counter"

// Program is the counter demo subprogram, selected by -counter.
type Program struct {
	run    bool
	step   int
	db     *string
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "counter", false, "Run the counter demo")
	fs.IntVar(&p.step, "step", 1, "Step of the counter in the counter demo")
	p.db = fs.DB()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	if p.step == 0 {
		return prog.BadUsage("-step must not be 0")
	}
	if err := prog.RequireTTY(fds); err != nil {
		return err
	}

	cfg, err := config.Active(*p.config)
	if err != nil {
		return err
	}
	if *p.db != "" {
		cfg.DB = *p.db
	}
	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}
	st, err := store.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	start, err := st.Counter(counterName)
	if err != nil && !errors.Is(err, storedefs.ErrNoCounter) {
		return err
	}

	final, err := steep.NewProgram(App{Counter: New(start, p.step)},
		tea.WithInput(fds[0]), tea.WithOutput(fds[1])).Run()
	if err != nil {
		return err
	}
	value := final.(steep.Runner[App]).Model().Counter.Value
	return st.SetCounter(counterName, value)
}
