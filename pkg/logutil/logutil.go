// Package logutil centralizes the debug loggers used in this module.
//
// Loggers obtained from [GetLogger] write to a shared destination, which
// starts out as [io.Discard] and can be redirected with [SetOutput] or
// [SetOutputFile]. Interactive programs must never log to the terminal they
// draw on, so the destination is only ever set from the -log flag.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix, writing to the shared
// destination.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including those that will be
// created later, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput, but opens the named file for appending
// first. Any file opened by a previous call is closed. An empty name resets
// the destination to [io.Discard].
func SetOutputFile(name string) error {
	if name == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = f
	outFile = f
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
