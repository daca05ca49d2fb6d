// Package storetest keeps test suites against [storedefs.Store].
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/steeptui/steep/pkg/store/storedefs"
)

// TestLine tests the transcript functionality of a fresh Store.
func TestLine(t *testing.T, s storedefs.Store) {
	t.Helper()

	if seq, err := s.NextLineSeq(); seq != 1 || err != nil {
		t.Errorf("NextLineSeq() = (%v, %v), want (1, nil) on a fresh store", seq, err)
	}

	for i, text := range []string{"echo a", "echo b", "echo c"} {
		seq, err := s.AddLine(text)
		if err != nil {
			t.Fatalf("AddLine(%q) -> error %v", text, err)
		}
		if seq != i+1 {
			t.Errorf("AddLine(%q) -> seq %v, want %v", text, seq, i+1)
		}
	}

	if text, err := s.Line(2); text != "echo b" || err != nil {
		t.Errorf(`Line(2) = (%q, %v), want ("echo b", nil)`, text, err)
	}
	if _, err := s.Line(100); !errors.Is(err, storedefs.ErrNoMatchingLine) {
		t.Errorf("Line(100) -> error %v, want ErrNoMatchingLine", err)
	}

	wantLast2 := []storedefs.Line{{Text: "echo b", Seq: 2}, {Text: "echo c", Seq: 3}}
	if lines, err := s.LastLines(2); err != nil {
		t.Errorf("LastLines(2) -> error %v", err)
	} else if diff := cmp.Diff(wantLast2, lines); diff != "" {
		t.Errorf("LastLines(2) (-want +got):\n%s", diff)
	}

	wantAll := []storedefs.Line{{Text: "echo a", Seq: 1}, {Text: "echo b", Seq: 2}, {Text: "echo c", Seq: 3}}
	if lines, err := s.LastLines(100); err != nil {
		t.Errorf("LastLines(100) -> error %v", err)
	} else if diff := cmp.Diff(wantAll, lines); diff != "" {
		t.Errorf("LastLines(100) (-want +got):\n%s", diff)
	}

	if lines, err := s.LastLines(0); len(lines) != 0 || err != nil {
		t.Errorf("LastLines(0) = (%v, %v), want (empty, nil)", lines, err)
	}

	if err := s.DelLine(2); err != nil {
		t.Errorf("DelLine(2) -> error %v", err)
	}
	if _, err := s.Line(2); !errors.Is(err, storedefs.ErrNoMatchingLine) {
		t.Errorf("Line(2) after DelLine -> error %v, want ErrNoMatchingLine", err)
	}
	wantRemaining := []storedefs.Line{{Text: "echo a", Seq: 1}, {Text: "echo c", Seq: 3}}
	if lines, err := s.LastLines(100); err != nil {
		t.Errorf("LastLines(100) -> error %v", err)
	} else if diff := cmp.Diff(wantRemaining, lines); diff != "" {
		t.Errorf("LastLines(100) after DelLine (-want +got):\n%s", diff)
	}

	// Sequence numbers are never reused, even after a deletion.
	if seq, err := s.AddLine("echo d"); seq != 4 || err != nil {
		t.Errorf("AddLine after DelLine -> (%v, %v), want (4, nil)", seq, err)
	}
}

// TestCounter tests the counter functionality of a fresh Store.
func TestCounter(t *testing.T, s storedefs.Store) {
	t.Helper()

	if _, err := s.Counter("clicks"); !errors.Is(err, storedefs.ErrNoCounter) {
		t.Errorf("Counter on a fresh store -> error %v, want ErrNoCounter", err)
	}

	if err := s.SetCounter("clicks", 7); err != nil {
		t.Fatalf("SetCounter -> error %v", err)
	}
	if value, err := s.Counter("clicks"); value != 7 || err != nil {
		t.Errorf("Counter = (%v, %v), want (7, nil)", value, err)
	}

	// Counters may go negative and may be overwritten.
	if err := s.SetCounter("clicks", -3); err != nil {
		t.Fatalf("SetCounter -> error %v", err)
	}
	if value, err := s.Counter("clicks"); value != -3 || err != nil {
		t.Errorf("Counter = (%v, %v), want (-3, nil)", value, err)
	}

	if _, err := s.Counter("other"); !errors.Is(err, storedefs.ErrNoCounter) {
		t.Errorf("Counter(other) -> error %v, want ErrNoCounter", err)
	}
}
