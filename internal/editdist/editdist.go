// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// editdist.go - Grapheme-cluster Levenshtein distance.
package editdist

import (
	"github.com/rivo/uniseg"
)

// Distance returns the Levenshtein distance between a and b, counted in
// grapheme clusters. It is symmetric, Distance(x, x) == 0, and
// Distance(a, "") equals the number of grapheme clusters in a.
func Distance(a, b string) int {
	ga := graphemes(a)
	gb := graphemes(b)

	if len(ga) == 0 {
		return len(gb)
	}
	if len(gb) == 0 {
		return len(ga)
	}

	// Two-row DP sweep: O(n*m) time, O(m) auxiliary space.
	cols := len(gb) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ga); i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 0
			if ga[i-1] != gb[j-1] {
				cost = 1
			}

			// Minimum of: delete, insert, substitute
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
