//go:build !windows

package fsutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/steeptui/steep/pkg/env"
)

func TestDataHome_XDG(t *testing.T) {
	t.Setenv(env.XDG_DATA_HOME, "/xdg-data")
	got, err := DataHome()
	if want := filepath.Join("/xdg-data", "steep"); got != want || err != nil {
		t.Errorf("DataHome() = (%q, %v), want (%q, nil)", got, err, want)
	}
}

func TestDataHome_FallsBackToHome(t *testing.T) {
	t.Setenv(env.XDG_DATA_HOME, "")
	t.Setenv(env.HOME, "/home/nobody")
	got, err := DataHome()
	want := filepath.Join("/home/nobody", ".local", "share", "steep")
	if got != want || err != nil {
		t.Errorf("DataHome() = (%q, %v), want (%q, nil)", got, err, want)
	}
}

func TestConfigHome(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("os.UserConfigDir ignores XDG_CONFIG_HOME on darwin")
	}
	t.Setenv(env.XDG_CONFIG_HOME, "/xdg-config")
	got, err := ConfigHome()
	if want := filepath.Join("/xdg-config", "steep"); got != want || err != nil {
		t.Errorf("ConfigHome() = (%q, %v), want (%q, nil)", got, err, want)
	}
}
