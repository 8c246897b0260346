// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.Equal(t, FormatVersion, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoConfigFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, DefaultDir), cfg.Dir)
	assert.Equal(t, FormatVersion, cfg.Version)
}

func TestLoad_ConfigFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("dir = \"snaps\"\n"), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "snaps"), cfg.Dir)
	// Unset keys keep their defaults.
	assert.Equal(t, FormatVersion, cfg.Version)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("dir = \"snaps\"\n"), 0o644))

	override := filepath.Join(t.TempDir(), "elsewhere")
	t.Setenv(EnvDir, override)

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, override, cfg.Dir)
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("dir = [not toml"), 0o644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Dir: "", Version: "1.0.0"}.Validate())
	assert.Error(t, Config{Dir: "x", Version: ""}.Validate())
	assert.NoError(t, Config{Dir: "x", Version: "1.0.0"}.Validate())
}
