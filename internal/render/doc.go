// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render draws snapshots and diffs for the review session.
//
// View implements the review.Presenter interface with Lip Gloss styling:
// a boxed header carrying the snapshot title and position counter, then
// either the full content of a new snapshot or a line diff against the
// accepted baseline. Colors adapt to light and dark terminals and degrade
// to plain text when the terminal has no color support.
package render
