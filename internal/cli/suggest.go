// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package cli

import (
	"strings"

	"github.com/jeranaias/calque/internal/editdist"
)

// suggestThreshold is the largest edit distance still considered a
// plausible typo.
const suggestThreshold = 3

// vocabulary is every accepted command spelling in a fixed order: canonical
// names first, then aliases. The order is the tie-break for equidistant
// candidates, so it must stay deterministic.
var vocabulary = []string{
	"review",
	"accept-all",
	"reject-all",
	"help",
	"r",
	"aa",
	"ra",
	"h",
}

// Suggest returns the vocabulary entry closest to the input, measured in
// grapheme-level edit distance, or "" when nothing is within the
// threshold. The first entry achieving the minimal distance wins; later
// entries must be strictly closer to replace it.
func Suggest(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best := ""
	bestDistance := suggestThreshold + 1

	for _, candidate := range vocabulary {
		d := editdist.Distance(input, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}
