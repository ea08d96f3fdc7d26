// Package config loads the optional defaults file. Command-line flags
// always override values from the file; a missing file is not an
// error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user's default display preferences, read from
// <user config dir>/gocpufetch/config.yaml.
type Config struct {
	NoLogo bool   `yaml:"no-logo"`
	Logo   string `yaml:"logo"`
}

// Load reads the defaults file from the user's config directory.
// A zero Config is returned when the file does not exist.
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		// No config directory on this system; run with defaults.
		return &Config{}, nil
	}
	return load(filepath.Join(dir, "gocpufetch", "config.yaml"))
}

func load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	return &cfg, nil
}
