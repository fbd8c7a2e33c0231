package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Flags override whatever the file sets.
type Config struct {
	DefaultPuzzle string `yaml:"default_puzzle"`
	Solver        string `yaml:"solver"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultPuzzle: "puzzle0.dat",
		Solver:        "mrv",
		LogLevel:      "info",
	}
}

// Load reads path over the defaults. A missing file is only an error when
// explicit is true; the conventional location may simply not exist.
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
