// Package config loads CLI defaults from an optional YAML file. Flags always
// override file values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "doku.yaml"

// Config holds user-tunable defaults.
type Config struct {
	Store    string `yaml:"store"`    // "sqlite" or "fs"
	Database string `yaml:"database"` // sqlite file path
	Dir      string `yaml:"dir"`      // fs store directory
	DelayMS  int    `yaml:"delayMs"`  // animation delay between steps
	LogLevel string `yaml:"logLevel"` // debug|info|warn|error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store:    "sqlite",
		Database: "doku.db",
		Dir:      "puzzles",
		DelayMS:  0,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. A missing file at the
// default location is not an error; an explicitly requested missing file is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
