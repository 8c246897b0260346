// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// snapshot.go - The snapshot value and its file format.
package snapshot

import (
	"fmt"
	"strings"
)

// =============================================================================
// SNAPSHOT VALUE
// =============================================================================

// Status is the in-memory review state of a snapshot. The on-disk rejected
// state exists only as a filename suffix and never materializes here.
type Status string

const (
	// StatusNew marks a freshly captured snapshot awaiting review
	StatusNew Status = "new"
	// StatusAccepted marks the baseline treated as ground truth
	StatusAccepted Status = "accepted"
)

// Snapshot is a captured text artifact under a title. Snapshots are
// immutable values; a changed snapshot is a new Snapshot value.
type Snapshot struct {
	Title   string
	Content string
	Status  Status
}

// New builds a pending snapshot for a freshly captured artifact.
func New(title, content string) Snapshot {
	return Snapshot{Title: title, Content: content, Status: StatusNew}
}

// =============================================================================
// FILE FORMAT
// =============================================================================

const (
	headerDelim = "---"
	titlePrefix = "title: "
)

// Serialize renders the snapshot file: a fixed 4-line header followed by the
// content verbatim, joined with '\n'. No extra trailing newline is appended.
func (s *Store) Serialize(snap Snapshot) []byte {
	parts := []string{
		headerDelim,
		"version: " + s.version,
		titlePrefix + escapeTitle(snap.Title),
		headerDelim,
		snap.Content,
	}
	return []byte(strings.Join(parts, "\n"))
}

// Deserialize parses snapshot file bytes. Windows line endings are
// normalized first; then the 4-line header shape is required exactly. Any
// structural deviation yields a corrupted-snapshot error rather than a
// best-effort partial parse.
func (s *Store) Deserialize(data []byte, expected Status) (Snapshot, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	parts := strings.SplitN(text, "\n", 5)
	if len(parts) < 4 {
		return Snapshot{}, corrupted("too few lines for a snapshot header")
	}
	if parts[0] != headerDelim {
		return Snapshot{}, corrupted("missing opening %q delimiter", headerDelim)
	}
	// parts[1] is the version line: it must be present but is not
	// interpreted during parsing.
	if !strings.HasPrefix(parts[2], titlePrefix) {
		return Snapshot{}, corrupted("missing %q line", strings.TrimSpace(titlePrefix))
	}
	if parts[3] != headerDelim {
		return Snapshot{}, corrupted("missing closing %q delimiter", headerDelim)
	}

	content := ""
	if len(parts) == 5 {
		content = parts[4]
	}

	return Snapshot{
		Title:   unescapeTitle(strings.TrimPrefix(parts[2], titlePrefix)),
		Content: content,
		Status:  expected,
	}, nil
}

func corrupted(format string, args ...any) *Error {
	return &Error{Kind: KindCorruptedSnapshot, Err: fmt.Errorf(format, args...)}
}

// escapeTitle keeps the title on a single header line by escaping embedded
// newlines to the two-character sequence backslash-n.
func escapeTitle(title string) string {
	return strings.ReplaceAll(title, "\n", `\n`)
}

func unescapeTitle(title string) string {
	return strings.ReplaceAll(title, `\n`, "\n")
}
