// Steep is the launcher for the steep demos. Each demo is a subprogram
// selected by a flag: -counter, -counters and -chat run the terminal demos,
// and -echod runs the websocket echo server the chat demo talks to. Run
// with -help for the full list of flags.
package main

import (
	"os"

	"github.com/steeptui/steep/pkg/buildinfo"
	"github.com/steeptui/steep/pkg/chat"
	"github.com/steeptui/steep/pkg/counter"
	"github.com/steeptui/steep/pkg/counters"
	"github.com/steeptui/steep/pkg/echod"
	"github.com/steeptui/steep/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, composite()))
}

func composite() prog.Program {
	return prog.Composite(
		&buildinfo.Program{}, &echod.Program{}, &counter.Program{},
		&counters.Program{}, &chat.Program{}, noDemo{})
}

// noDemo terminates the composite when no demo flag was given.
type noDemo struct{}

func (noDemo) RegisterFlags(*prog.FlagSet) {}

func (noDemo) Run([3]*os.File, []string) error {
	return prog.BadUsage("no demo selected")
}
