// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-level diffs between snapshot bodies.
//
// The engine produces an ordered list of tagged line records describing how
// an accepted ("old") body aligns with a candidate ("new") body. Alignment
// is computed with a histogram-based longest-common-subsequence: the rarest
// line common to both sides anchors the decomposition, which keeps blank
// lines and other frequent filler from dominating the alignment.
//
// # Key Types
//
//   - Kind: tag of a diff line (shared, old, new)
//   - Line: single tagged line with its 1-based position
//
// # Usage
//
//	for _, line := range diff.LineByLine(oldBody, newBody) {
//		fmt.Printf("%s %d %s\n", line.Kind.Prefix(), line.Number, line.Text)
//	}
//
// Comparison is whole-line string equality. Callers must normalize Windows
// line endings first (see NormalizeNewlines); the engine never sees '\r'.
package diff
