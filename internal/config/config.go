// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration loading and defaults for calque.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultDir is the snapshot folder name, relative to the project root.
	DefaultDir = "calque_snapshots"

	// FormatVersion is the snapshot file format version written into every
	// snapshot header.
	FormatVersion = "1.0.0"

	// FileName is the optional per-project configuration file.
	FileName = ".calque.toml"

	// EnvDir overrides the snapshot directory when set.
	EnvDir = "CALQUE_DIR"
)

// Config carries the process-wide calque settings. It is threaded into the
// store and orchestrator rather than read from globals.
type Config struct {
	// Dir is the snapshot storage directory. A relative path is resolved
	// against the project root.
	Dir string `toml:"dir"`

	// Version is the snapshot format version written into headers.
	Version string `toml:"version"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dir:     DefaultDir,
		Version: FormatVersion,
	}
}

// Load resolves the configuration for a project root: defaults, overlaid by
// .calque.toml when present, overlaid by environment overrides. A missing
// config file is not an error.
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if dir := os.Getenv(EnvDir); dir != "" {
		cfg.Dir = dir
	}

	if !filepath.IsAbs(cfg.Dir) {
		cfg.Dir = filepath.Join(root, cfg.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the store cannot work with.
func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("config: snapshot directory must not be empty")
	}
	if c.Version == "" {
		return fmt.Errorf("config: format version must not be empty")
	}
	return nil
}
