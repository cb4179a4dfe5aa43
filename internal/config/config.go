// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package config loads the converter configuration from TOML and supplies
// repository defaults for everything the curator has not set.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the full converter configuration.
type Config struct {
	OutputDir string  `toml:"output_dir"`
	LogLevel  string  `toml:"log_level"`
	LogFormat string  `toml:"log_format"`
	Session   Session `toml:"session"`
}

// Session contains curator defaults folded into the session descriptor.
type Session struct {
	TaskName           string  `toml:"task_name"`
	Manufacturer       string  `toml:"manufacturer"`
	InstitutionName    string  `toml:"institution_name"`
	PowerLineFrequency float64 `toml:"power_line_frequency"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OutputDir: ".",
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Session: Session{
			PowerLineFrequency: defaultPowerLineFrequency,
		},
	}
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ieegbids", "config.toml"), nil
}

// Load reads the config at path, or returns defaults when path is empty and
// no per-user config exists. The returned config is always validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the sample configuration to path, refusing to clobber
// an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
