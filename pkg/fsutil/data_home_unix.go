//go:build !windows

package fsutil

import (
	"os"
	"path/filepath"

	"github.com/steeptui/steep/pkg/env"
)

// DataHome returns the directory for steep's data files, following the XDG
// base directory convention.
func DataHome() (string, error) {
	if dir := os.Getenv(env.XDG_DATA_HOME); dir != "" {
		return filepath.Join(dir, "steep"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "steep"), nil
}
