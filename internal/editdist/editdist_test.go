// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editdist

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"review", "reviwe", 2}, // plain Levenshtein counts a transposition as two edits
		{"a", "b", 1},
		{"help", "hel", 1},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q): Expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "word"},
		{"héllo", "hello"},
		{"aa", "r"},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q)=%d but Distance(%q, %q)=%d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

// A grapheme cluster counts as one unit no matter how many runes or bytes
// it spans.
func TestDistanceGraphemeClusters(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"é", "", 1},            // e + combining acute is one cluster
		{"café", "cafe", 1},     // accented vs plain letter is one substitution
		{"👍", "", 1},            // emoji is one cluster, not four bytes
		{"👨‍👩‍👧", "", 1},          // ZWJ family sequence is a single cluster
		{"a👍b", "ab", 1},        // removing the emoji is one edit
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q): Expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}
