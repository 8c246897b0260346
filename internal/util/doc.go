// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small filesystem helpers shared across calque.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	err := util.AtomicWriteFile(path, data, 0o644)
package util
