// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package snapshot owns the on-disk representation of snapshots.
//
// A snapshot is identified by its title. For one title at most one live file
// represents current truth at any time: a pending file (<safe-title>.snap),
// an accepted baseline (<safe-title>.accepted.snap), both (pending awaiting
// review against a baseline), or neither. A rejected file
// (<safe-title>.rejected.snap) is inert history and is never read back.
//
// # Key Types
//
//   - Snapshot: immutable captured artifact with title, content and status
//   - Store: locates the storage root, serializes the file format, and
//     performs the pending/accepted/rejected state transitions
//   - Error: structured store error with a closed kind set
//
// # File format
//
//	---
//	version: <semver>
//	title: <title, embedded newlines escaped as literal backslash-n>
//	---
//	<raw content, no trailing newline appended>
package snapshot
