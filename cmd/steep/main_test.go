package main

import (
	"testing"

	"github.com/steeptui/steep/pkg/buildinfo"
	"github.com/steeptui/steep/pkg/prog/progtest"
)

var (
	Test      = progtest.Test
	ThatSteep = progtest.ThatSteep
)

func TestSteep(t *testing.T) {
	Test(t, composite(),
		ThatSteep().ExitsWith(2).
			WritesStderrContaining("no demo selected\nUsage:"),
		ThatSteep("-version").
			WritesStdout(buildinfo.Value.Version+"\n"),
		// The composite registers every demo's flags.
		ThatSteep("-help").
			WritesStdoutContaining("-chat"),
		ThatSteep("-counter").ExitsWith(2).
			WritesStderrContaining("connected to a terminal"),
	)
}
