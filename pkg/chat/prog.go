package chat

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/comps"
	"github.com/steeptui/steep/pkg/config"
	"github.com/steeptui/steep/pkg/prog"
	"github.com/steeptui/steep/pkg/steep"
	"github.com/steeptui/steep/pkg/store"
)

// How many stored lines are replayed into the transcript on startup.
const replayLines = 100

// Program is the chat demo subprogram, selected by -chat.
type Program struct {
	run    bool
	server string
	nick   string
	db     *string
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "chat", false, "Run the chat demo")
	fs.StringVar(&p.server, "server", "",
		"Websocket URL for -chat to connect to, overriding the configuration")
	fs.StringVar(&p.nick, "nick", "",
		"Nick for -chat to use, overriding the configuration")
	p.db = fs.DB()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	if err := prog.RequireTTY(fds); err != nil {
		return err
	}

	cfg, err := config.Active(*p.config)
	if err != nil {
		return err
	}
	if p.server != "" {
		cfg.Server = p.server
	}
	if p.nick != "" {
		cfg.Nick = p.nick
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

	conn, err := DialWS(cfg.Server)
	if err != nil {
		return fmt.Errorf("cannot connect to %v: %v", cfg.Server, err)
	}
	defer conn.Close()

	lines, err := st.LastLines(replayLines)
	if err != nil {
		return err
	}
	transcript := make([]string, len(lines))
	for i, line := range lines {
		transcript[i] = line.Text
	}

	m := Model{
		Input:      comps.Input{Prompt: cfg.Nick + "> "},
		Nick:       cfg.Nick,
		Transcript: transcript,
		Conn:       StoredConn{Conn: conn, Store: st},
	}
	_, err = steep.NewProgram(m,
		tea.WithInput(fds[0]), tea.WithOutput(fds[1])).Run()
	return err
}
