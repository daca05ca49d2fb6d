// Package fsutil provides filesystem path utilities.
package fsutil

import (
	"os"
	"path/filepath"
)

// ConfigHome returns the directory for steep's configuration files. It
// respects XDG_CONFIG_HOME where the platform does.
func ConfigHome() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "steep"), nil
}

// EnsureDataDir returns the directory for steep's data files, creating it if
// it does not exist yet.
func EnsureDataDir() (string, error) {
	dir, err := DataHome()
	if err != nil {
		return "", err
	}
	return dir, os.MkdirAll(dir, 0o700)
}
