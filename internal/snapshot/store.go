// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// store.go - Snapshot storage root and state transitions.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/jeranaias/calque/internal/config"
	"github.com/jeranaias/calque/internal/util"
)

// Filename suffixes encoding the review state of a snapshot file.
const (
	// PendingSuffix marks a snapshot awaiting review
	PendingSuffix = ".snap"
	// AcceptedSuffix marks the accepted baseline for a title
	AcceptedSuffix = ".accepted.snap"
	// RejectedSuffix marks inert rejected history
	RejectedSuffix = ".rejected.snap"
)

// pathSeparatorPlaceholder replaces '/' and '\' in titles. U+29F8 BIG
// SOLIDUS reads like a slash but is not a path separator anywhere.
const pathSeparatorPlaceholder = '⧸'

// Store performs all snapshot file operations for one project. All state is
// on disk; the struct itself is safe to copy and share.
type Store struct {
	dir     string
	version string
}

// NewStore builds a store from the project configuration.
func NewStore(cfg config.Config) *Store {
	return &Store{dir: cfg.Dir, version: cfg.Version}
}

// Dir returns the storage root path.
func (s *Store) Dir() string {
	return s.dir
}

// =============================================================================
// ROOT AND PATHS
// =============================================================================

// EnsureRoot creates the storage directory if needed and validates that the
// path is in fact a directory.
func (s *Store) EnsureRoot() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &Error{Kind: KindStoreRootUnavailable, Path: s.dir, Err: err}
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return "", &Error{Kind: KindStoreRootUnavailable, Path: s.dir, Err: err}
	}
	if !info.IsDir() {
		return "", &Error{Kind: KindStoreRootUnavailable, Path: s.dir, Err: errors.New("not a directory")}
	}
	return s.dir, nil
}

// SafeBasename deterministically transforms a title into a filename-safe
// basename: path separators become a visually distinct placeholder, any
// character outside [alphanumeric, -, _, space, ., !, +, :] becomes '_',
// then surrounding whitespace is trimmed and internal runs collapse to a
// single space.
//
// Two distinct titles can sanitize to the same basename and will collide;
// this is an accepted limitation, not silently resolved.
func SafeBasename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r == '/' || r == '\\':
			b.WriteRune(pathSeparatorPlaceholder)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case strings.ContainsRune("-_ .!+:", r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// PendingPath returns the pending file path for a title.
func (s *Store) PendingPath(title string) string {
	return filepath.Join(s.dir, SafeBasename(title)+PendingSuffix)
}

// AcceptedPath returns the accepted baseline path for a title.
func (s *Store) AcceptedPath(title string) string {
	return filepath.Join(s.dir, SafeBasename(title)+AcceptedSuffix)
}

// AcceptedPathFor maps a pending file path to its accepted counterpart.
func AcceptedPathFor(pendingPath string) string {
	return strings.TrimSuffix(pendingPath, PendingSuffix) + AcceptedSuffix
}

// RejectedPathFor maps a pending file path to its rejected counterpart.
func RejectedPathFor(pendingPath string) string {
	return strings.TrimSuffix(pendingPath, PendingSuffix) + RejectedSuffix
}

// =============================================================================
// READ / WRITE
// =============================================================================

// ReadAccepted loads the accepted baseline for a title. A missing baseline
// is the normal "no baseline yet" outcome and returns (nil, nil); any other
// read failure is surfaced.
func (s *Store) ReadAccepted(title string) (*Snapshot, error) {
	path := s.AcceptedPath(title)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Kind: KindReadAcceptedFailed, Path: path, Title: title, Err: err}
	}

	snap, err := s.Deserialize(data, StatusAccepted)
	if err != nil {
		annotate(err, path, title)
		return nil, err
	}
	return &snap, nil
}

// ReadPending loads a pending snapshot by file path (titles are only known
// after parsing the header).
func (s *Store) ReadPending(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindReadPendingFailed, Path: path, Err: err}
	}

	snap, err := s.Deserialize(data, StatusNew)
	if err != nil {
		annotate(err, path, "")
		return nil, err
	}
	return &snap, nil
}

// WritePending persists a pending snapshot, overwriting any existing pending
// file for the title. It refuses a target that already carries the accepted
// suffix: a pending write must never clobber a baseline.
func (s *Store) WritePending(snap Snapshot) error {
	path := s.PendingPath(snap.Title)
	if strings.HasSuffix(path, AcceptedSuffix) {
		return &Error{
			Kind: KindWritePendingFailed, Path: path, Title: snap.Title,
			Err: errors.New("pending path carries the accepted suffix"),
		}
	}

	if err := util.AtomicWriteFile(path, s.Serialize(snap), 0o644); err != nil {
		return &Error{Kind: KindWritePendingFailed, Path: path, Title: snap.Title, Err: err}
	}
	return nil
}

// RemovePending deletes any stray pending file for a title. Deletion is
// best-effort: a failure here never outranks the outcome being reported.
func (s *Store) RemovePending(title string) {
	_ = os.Remove(s.PendingPath(title))
}

// =============================================================================
// REVIEW TRANSITIONS
// =============================================================================

// ListPending returns the pending snapshot files under the storage root,
// sorted lexicographically by filename for a deterministic review order.
// Accepted and rejected files are never included.
func (s *Store) ListPending() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Kind: KindListPendingFailed, Path: s.dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(name, PendingSuffix) {
			continue
		}
		if strings.HasSuffix(name, AcceptedSuffix) || strings.HasSuffix(name, RejectedSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, name))
	}

	sort.Strings(paths)
	return paths, nil
}

// Accept promotes a pending file to the accepted baseline for its title,
// overwriting any prior baseline. The rename is a single all-or-nothing
// filesystem operation.
func (s *Store) Accept(pendingPath string) error {
	target := AcceptedPathFor(pendingPath)
	if err := os.Rename(pendingPath, target); err != nil {
		return &Error{Kind: KindAcceptFailed, Path: pendingPath, Err: err}
	}
	return nil
}

// Reject renames a pending file to its rejected form, leaving any existing
// baseline for the title untouched.
func (s *Store) Reject(pendingPath string) error {
	target := RejectedPathFor(pendingPath)
	if err := os.Rename(pendingPath, target); err != nil {
		return &Error{Kind: KindRejectFailed, Path: pendingPath, Err: err}
	}
	return nil
}

// annotate fills in path/title context on a store error created where that
// context was not yet known.
func annotate(err error, path, title string) {
	var se *Error
	if errors.As(err, &se) {
		if se.Path == "" {
			se.Path = path
		}
		if se.Title == "" {
			se.Title = title
		}
	}
}

// String implements fmt.Stringer for debugging.
func (s *Store) String() string {
	return fmt.Sprintf("snapshot.Store(%s)", s.dir)
}
