package fsutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/steeptui/steep/pkg/env"
)

// DataHome returns the directory for steep's data files.
func DataHome() (string, error) {
	appData := os.Getenv(env.LocalAppData)
	if appData == "" {
		return "", errors.New("LocalAppData is not set")
	}
	return filepath.Join(appData, "steep"), nil
}
