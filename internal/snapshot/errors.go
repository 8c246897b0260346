// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured error values for store operations.
//
// Store failures are tagged values from a closed kind set, each carrying the
// underlying cause and the offending path, rather than a single generic
// error type.
package snapshot

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the store operation that failed.
type ErrorKind int

const (
	// KindStoreRootUnavailable means the storage root could not be created
	// or is not a directory.
	KindStoreRootUnavailable ErrorKind = iota
	// KindReadAcceptedFailed means an accepted baseline exists but could
	// not be read. A missing baseline is not an error.
	KindReadAcceptedFailed
	// KindReadPendingFailed means a pending file could not be read.
	KindReadPendingFailed
	// KindWritePendingFailed means a pending file could not be written.
	KindWritePendingFailed
	// KindListPendingFailed means the pending files could not be listed.
	KindListPendingFailed
	// KindAcceptFailed means the pending-to-accepted rename failed.
	KindAcceptFailed
	// KindRejectFailed means the pending-to-rejected rename failed.
	KindRejectFailed
	// KindCorruptedSnapshot means a snapshot file does not match the
	// 4-line header format.
	KindCorruptedSnapshot
)

// String returns the human-readable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindStoreRootUnavailable:
		return "store root unavailable"
	case KindReadAcceptedFailed:
		return "failed to read accepted snapshot"
	case KindReadPendingFailed:
		return "failed to read pending snapshot"
	case KindWritePendingFailed:
		return "failed to write pending snapshot"
	case KindListPendingFailed:
		return "failed to list pending snapshots"
	case KindAcceptFailed:
		return "failed to accept snapshot"
	case KindRejectFailed:
		return "failed to reject snapshot"
	case KindCorruptedSnapshot:
		return "corrupted snapshot"
	default:
		return "unknown store error"
	}
}

// Error is a store failure: a kind plus the offending path and title where
// known, wrapping the underlying cause.
type Error struct {
	Kind  ErrorKind
	Path  string // offending file, if any
	Title string // snapshot title, if known
	Err   error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Title != "" {
		msg = fmt.Sprintf("%s for %q", msg, e.Title)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a store Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}
