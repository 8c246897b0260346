// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editdist computes edit distances between short strings.
//
// The distance is the classic Levenshtein distance (insertions, deletions
// and substitutions at unit cost), computed over grapheme clusters rather
// than bytes or runes, so a multi-codepoint emoji or a combining sequence
// counts as a single edit unit.
//
// # Key Functions
//
//   - Distance: Levenshtein distance between two strings
//
// # Usage
//
//	d := editdist.Distance("kitten", "sitting") // 3
package editdist
