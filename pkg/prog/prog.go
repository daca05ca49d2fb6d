// Package prog provides the entry point to the steep demo launcher. Its
// sibling packages correspond to subprograms, selected by their own flags.
package prog

// This package sets up the basic environment - common flags, debug logging -
// and calls the appropriate subprogram, one of the demos or the echo server.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/steeptui/steep/pkg/logutil"
)

// FlagSet wraps a [flag.FlagSet], and provides methods to register flags
// shared by multiple subprograms on first use.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	db     *string
	config *string
}

// JSON returns a pointer to the value of the shared -json flag, registering
// it on first call.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -version in JSON")
		fs.json = &json
	}
	return fs.json
}

// DB returns a pointer to the value of the shared -db flag, registering it
// on first call.
func (fs *FlagSet) DB() *string {
	if fs.db == nil {
		var db string
		fs.StringVar(&db, "db", "",
			"Path to the database file")
		fs.db = &db
	}
	return fs.db
}

// Config returns a pointer to the value of the shared -config flag,
// registering it on first call.
func (fs *FlagSet) Config() *string {
	if fs.config == nil {
		var config string
		fs.StringVar(&config, "config", "",
			"Path to the configuration file")
		fs.config = &config
	}
	return fs.config
}

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the subprogram's flags.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. If the subprogram does not consider itself
	// selected, it returns [ErrNextProgram] without any other side effect.
	Run(fds [3]*os.File, args []string) error
}

// ErrNextProgram is a special error that may be returned by [Program.Run],
// signalling that the next program in a [Composite] should run instead.
var ErrNextProgram = errors.New("internal error: no next program")

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the process.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := &FlagSet{FlagSet: flag.NewFlagSet("steep", flag.ContinueOnError)}
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var help bool
	var logFile string
	fs.BoolVar(&help, "help", false, "Show usage help and quit")
	fs.StringVar(&logFile, "log", "", "Path for a debug log file")
	p.RegisterFlags(fs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h, so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if logFile != "" {
		err = logutil.SetOutputFile(logFile)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintln(out, "Usage: steep [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return [ErrNextProgram].
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNextProgram {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNextProgram.
	return ErrNextProgram
}

// BadUsage returns a special error that may be returned by [Program.Run]. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by [Program.Run]. It
// causes the main function to exit with the given code without printing any
// error messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
