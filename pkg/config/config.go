// Package config loads the optional steep configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/steeptui/steep/pkg/fsutil"
	"github.com/steeptui/steep/pkg/logutil"
)

var logger = logutil.GetLogger("[config] ")

// Config holds the contents of the configuration file, which is in YAML.
// Zero fields stand for the built-in defaults, so a partial file works.
type Config struct {
	// Server is the websocket URL the chat demo connects to.
	Server string `yaml:"server"`
	// Nick is the name the chat demo prefixes sent lines with.
	Nick string `yaml:"nick"`
	// DB is the path of the database file used by the demos. If empty, a
	// file in the user's data directory is used.
	DB string `yaml:"db"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Server: "ws://localhost:3379/echo",
		Nick:   "you",
	}
}

// DefaultPath returns the default path of the configuration file.
func DefaultPath() (string, error) {
	dir, err := fsutil.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "steep.yaml"), nil
}

// Active loads the configuration in effect: the file at path, or the file
// at [DefaultPath] when path is empty.
func Active(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), err
		}
		path = p
	}
	return Load(path)
}

// Load reads the configuration file at path. A missing file is not an
// error; the defaults are returned. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("no config file at %v, using defaults", path)
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %v: %w", path, err)
	}
	logger.Printf("loaded config from %v", path)
	return cfg, nil
}

// DBPath returns the database path to use: the configured one if set,
// otherwise a file named db.bolt in the user's data directory, which is
// created if missing.
func (cfg Config) DBPath() (string, error) {
	if cfg.DB != "" {
		return cfg.DB, nil
	}
	dir, err := fsutil.EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db.bolt"), nil
}
