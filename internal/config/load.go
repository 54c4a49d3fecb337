// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the .uplift.yaml file from the given tree root. A missing
// file is not an error; it returns a zero-value Config.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided tree path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GlobalConfigDir returns the directory for global uplift configuration,
// $XDG_CONFIG_HOME/uplift if set, otherwise ~/.config/uplift.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "uplift")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "uplift")
}

// LoadGlobal loads the global config file. A missing file returns a
// zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	path := filepath.Join(GlobalConfigDir(), "config.yaml")
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
