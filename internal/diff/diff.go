// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff.go - Histogram-LCS line diff between snapshot bodies.
package diff

import (
	"strings"
)

// =============================================================================
// DIFF TYPES
// =============================================================================

// Kind represents the tag of a diff line.
type Kind int

const (
	// KindShared represents a line present in both bodies
	KindShared Kind = iota
	// KindOld represents a line present only in the old body
	KindOld
	// KindNew represents a line present only in the new body
	KindNew
)

// String returns the string representation of a diff line kind.
func (k Kind) String() string {
	switch k {
	case KindShared:
		return "shared"
	case KindOld:
		return "old"
	case KindNew:
		return "new"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this line kind.
func (k Kind) Prefix() string {
	switch k {
	case KindShared:
		return " "
	case KindOld:
		return "-"
	case KindNew:
		return "+"
	default:
		return " "
	}
}

// =============================================================================
// DIFF LINE
// =============================================================================

// Line represents a single tagged line in a diff.
//
// Number is not a single monotonic counter: old lines carry their 1-based
// position in the old body, shared and new lines carry their 1-based
// position in the new body. While both sides stay aligned the numbers agree;
// they diverge after an insertion or deletion.
type Line struct {
	Number int    // 1-based position (old body for KindOld, new body otherwise)
	Text   string // The line content, without its newline
	Kind   Kind   // shared, old, or new
}

// =============================================================================
// NEWLINE NORMALIZATION
// =============================================================================

// NormalizeNewlines rewrites Windows line endings to '\n'. Callers must
// apply it before diffing or comparing bodies; the engine itself never
// sees '\r'.
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// LineByLine computes the tagged alignment between an old and a new body.
//
// Both bodies are split on '\n' without trimming, so a trailing newline on
// one side shows up as one extra empty line on that side. An empty body
// splits to zero lines; the wholly-degenerate case of two empty bodies
// returns a single shared empty line so a diff display always has one row.
func LineByLine(old, new string) []Line {
	if old == "" && new == "" {
		return []Line{{Number: 1, Text: "", Kind: KindShared}}
	}

	oldLines := splitLines(old)
	newLines := splitLines(new)
	chain := commonChain(oldLines, newLines)

	// Walk both bodies and the common chain in lockstep: old-only lines are
	// emitted before new-only lines, so a changed line appears as its old
	// form immediately followed by its new form.
	result := make([]Line, 0, len(oldLines)+len(newLines))
	oldIdx, newIdx, chainIdx := 0, 0, 0

	for oldIdx < len(oldLines) || newIdx < len(newLines) {
		switch {
		case chainIdx < len(chain) &&
			oldIdx < len(oldLines) && newIdx < len(newLines) &&
			oldLines[oldIdx] == chain[chainIdx] && newLines[newIdx] == chain[chainIdx]:
			result = append(result, Line{Number: newIdx + 1, Text: newLines[newIdx], Kind: KindShared})
			oldIdx++
			newIdx++
			chainIdx++

		case oldIdx < len(oldLines) && (chainIdx >= len(chain) || oldLines[oldIdx] != chain[chainIdx]):
			result = append(result, Line{Number: oldIdx + 1, Text: oldLines[oldIdx], Kind: KindOld})
			oldIdx++

		case newIdx < len(newLines):
			result = append(result, Line{Number: newIdx + 1, Text: newLines[newIdx], Kind: KindNew})
			newIdx++

		default:
			// Old side waiting on a chain line the new side already passed;
			// cannot happen for a chain drawn from both bodies.
			result = append(result, Line{Number: oldIdx + 1, Text: oldLines[oldIdx], Kind: KindOld})
			oldIdx++
		}
	}

	return result
}

// splitLines splits a body on '\n' without trimming. An empty body yields
// zero lines, not one empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// =============================================================================
// HISTOGRAM LCS
// =============================================================================

// histEntry tracks how often a line occurs in each middle range and where
// it first occurs on each side.
type histEntry struct {
	oldCount int
	newCount int
	firstOld int
	firstNew int
}

// chainTask is one unit of work for commonChain. A task either carries a
// literal chain segment to emit, or a pair of half-open ranges still to be
// decomposed.
type chainTask struct {
	oldLo, oldHi int
	newLo, newHi int
	emit         []string
}

// commonChain computes the common line chain used as the diff backbone.
//
// Each range pair is reduced by stripping the common prefix and suffix, then
// pivoted on the rarest line present in both remainders (lowest combined
// occurrence count). The decomposition runs on an explicit work stack rather
// than native recursion so pathological, highly repetitive inputs cannot
// exhaust the call stack.
func commonChain(oldLines, newLines []string) []string {
	var chain []string

	stack := []chainTask{{oldLo: 0, oldHi: len(oldLines), newLo: 0, newHi: len(newLines)}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.emit != nil {
			chain = append(chain, t.emit...)
			continue
		}

		oldLo, oldHi := t.oldLo, t.oldHi
		newLo, newHi := t.newLo, t.newHi

		// Common prefix joins the chain verbatim.
		var prefix []string
		for oldLo < oldHi && newLo < newHi && oldLines[oldLo] == newLines[newLo] {
			prefix = append(prefix, oldLines[oldLo])
			oldLo++
			newLo++
		}

		// Common suffix likewise, from what remains.
		var suffix []string
		for oldHi > oldLo && newHi > newLo && oldLines[oldHi-1] == newLines[newHi-1] {
			suffix = append([]string{oldLines[oldHi-1]}, suffix...)
			oldHi--
			newHi--
		}

		anchorOld, anchorNew, found := findAnchor(oldLines[oldLo:oldHi], newLines[newLo:newHi])

		// Pushed in reverse of emission order:
		// prefix ++ chain(before) ++ anchor ++ chain(after) ++ suffix.
		if len(suffix) > 0 {
			stack = append(stack, chainTask{emit: suffix})
		}
		if found {
			stack = append(stack,
				chainTask{
					oldLo: oldLo + anchorOld + 1, oldHi: oldHi,
					newLo: newLo + anchorNew + 1, newHi: newHi,
				},
				chainTask{emit: []string{oldLines[oldLo+anchorOld]}},
				chainTask{
					oldLo: oldLo, oldHi: oldLo + anchorOld,
					newLo: newLo, newHi: newLo + anchorNew,
				},
			)
		}
		if len(prefix) > 0 {
			stack = append(stack, chainTask{emit: prefix})
		}
	}

	return chain
}

// findAnchor picks the rarest line present in both ranges and returns its
// first occurrence on each side (indices relative to the ranges). found is
// false when the ranges share no line, in which case the middle contributes
// nothing to the chain.
func findAnchor(oldRange, newRange []string) (anchorOld, anchorNew int, found bool) {
	if len(oldRange) == 0 || len(newRange) == 0 {
		return 0, 0, false
	}

	hist := make(map[string]*histEntry, len(oldRange)+len(newRange))

	for i, line := range oldRange {
		e := hist[line]
		if e == nil {
			e = &histEntry{firstOld: i}
			hist[line] = e
		}
		e.oldCount++
	}
	for i, line := range newRange {
		e := hist[line]
		if e == nil {
			// New-only line, can never anchor; tracked so repeat
			// occurrences stay cheap.
			e = &histEntry{firstNew: i}
			hist[line] = e
		} else if e.newCount == 0 {
			e.firstNew = i
		}
		e.newCount++
	}

	// Scan the old range in order so ties on the occurrence count resolve
	// deterministically to the earliest candidate.
	best := -1
	for _, line := range oldRange {
		e := hist[line]
		if e.newCount == 0 {
			continue
		}
		total := e.oldCount + e.newCount
		if best == -1 || total < best {
			best = total
			anchorOld = e.firstOld
			anchorNew = e.firstNew
			found = true
		}
	}

	return anchorOld, anchorNew, found
}
