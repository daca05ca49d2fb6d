// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store
// API do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingLine is the error returned when a transcript query completes
// with no result.
var ErrNoMatchingLine = errors.New("no matching line")

// ErrNoCounter is the error returned when a counter has never been set.
var ErrNoCounter = errors.New("no such counter")

// Store is an interface satisfied by the storage backend.
type Store interface {
	// NextLineSeq returns the sequence number the next transcript line
	// will get.
	NextLineSeq() (int, error)
	// AddLine appends a line to the transcript and returns its sequence
	// number.
	AddLine(text string) (int, error)
	// Line queries the transcript line with the given sequence number.
	Line(seq int) (string, error)
	// DelLine deletes the transcript line with the given sequence number.
	DelLine(seq int) error
	// LastLines returns the last at most n transcript lines, oldest first.
	LastLines(n int) ([]Line, error)

	// Counter gets the value of a named counter.
	Counter(name string) (int, error)
	// SetCounter sets the value of a named counter.
	SetCounter(name string, value int) error
}

// Line is an entry in the transcript.
type Line struct {
	Text string
	Seq  int
}
