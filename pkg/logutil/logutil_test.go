package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_SharedDestination(t *testing.T) {
	defer SetOutput(io.Discard)

	var sb strings.Builder
	before := GetLogger("[before] ")
	SetOutput(&sb)
	after := GetLogger("[after] ")

	before.Println("a")
	after.Println("b")

	got := sb.String()
	if !strings.Contains(got, "[before] ") || !strings.Contains(got, "[after] ") {
		t.Errorf("log output missing prefixes:\n%s", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	defer SetOutput(io.Discard)

	name := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(name); err != nil {
		t.Fatal(err)
	}
	GetLogger("[x] ").Println("hello")
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "hello") {
		t.Errorf("log file does not contain message: %q", content)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("want error for unwritable path, got nil")
	}
}
