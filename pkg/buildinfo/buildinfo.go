// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/steeptui/steep/pkg/buildinfo.VersionSuffix=foobar"
// to "go build" or "go install".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/steeptui/steep/pkg/prog"
)

// Version identifies the version of steep. On the development branch, it
// identifies the next release.
const Version = "0.3.0"

// VersionSuffix is appended to Version to build the full version string. It
// is public so that it can be overridden when building steep.
var VersionSuffix = "-dev.unknown"

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   Version + VersionSuffix,
	GoVersion: runtime.Version(),
}

// Program is the buildinfo subprogram. It handles the -version and
// -buildinfo flags.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false,
		"Output the steep version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false,
		"Output information about the steep build and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
