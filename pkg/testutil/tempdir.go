package testutil

import (
	"fmt"
	"os"
)

// TempDir creates a temporary directory for testing that will be removed
// during cleanup. It panics if the directory cannot be created.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "steep-test")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir creates a new temporary directory and changes into it, undoing
// both during cleanup. It returns the path of the temporary directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into the given directory and arranges to change back during
// cleanup.
func Chdir(c Cleanuper, dir string) {
	oldWd, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("get working directory: %v", err))
	}
	if err := os.Chdir(dir); err != nil {
		panic(fmt.Sprintf("chdir to %v: %v", dir, err))
	}
	c.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			panic(fmt.Sprintf("chdir back to %v: %v", oldWd, err))
		}
	})
}
