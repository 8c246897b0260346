// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for calque.
//
// Configuration sources, in order of precedence:
//   - CALQUE_DIR environment variable
//   - .calque.toml in the project root
//   - Built-in defaults
//
// The snapshot folder name and the snapshot format version are carried in
// the Config value and threaded into the store and orchestrator, so tests
// can point the whole stack at a temporary root.
package config
