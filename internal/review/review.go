// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// review.go - The check state machine and the review loops.
package review

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jeranaias/calque/internal/diff"
	"github.com/jeranaias/calque/internal/snapshot"
)

// promptText is the verdict prompt shown for each pending snapshot.
const promptText = "accept (a) / reject (r) / skip (s) / quit (q): "

// =============================================================================
// OUTCOMES
// =============================================================================

// Outcome classifies a check call. New and Mismatch are deliberate
// control-flow signals for the calling test context, distinct from I/O
// errors.
type Outcome int

const (
	// OutcomeUnchanged means the artifact equals the accepted baseline
	OutcomeUnchanged Outcome = iota
	// OutcomeNew means no baseline existed; a pending file was written
	OutcomeNew
	// OutcomeMismatch means the artifact differs from the baseline; a
	// pending file was written
	OutcomeMismatch
)

// String returns the human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNew:
		return "new snapshot"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// CheckResult carries a check outcome plus the snapshots a presentation
// layer needs to explain it.
type CheckResult struct {
	Outcome  Outcome
	New      snapshot.Snapshot
	Accepted *snapshot.Snapshot // nil for OutcomeNew
}

// =============================================================================
// PRESENTER
// =============================================================================

// Presenter renders snapshots and diffs for a human reviewer. The
// orchestrator only hands over structured records; decoration is entirely
// the implementation's concern.
type Presenter interface {
	// ShowNew displays a pending snapshot that has no baseline.
	ShowNew(pending *snapshot.Snapshot, index, total int)
	// ShowDiff displays a pending snapshot against its accepted baseline.
	ShowDiff(accepted, pending *snapshot.Snapshot, index, total int)
}

// =============================================================================
// ORCHESTRATOR
// =============================================================================

// Orchestrator wires the store, the diff engine, input and presentation
// into the review workflow. All operations are synchronous and
// single-threaded.
type Orchestrator struct {
	store *snapshot.Store
	in    LineReader
	out   io.Writer
	view  Presenter
}

// NewOrchestrator builds an orchestrator. in may be nil for workflows that
// never prompt (check, accept-all, reject-all).
func NewOrchestrator(store *snapshot.Store, in LineReader, out io.Writer, view Presenter) *Orchestrator {
	return &Orchestrator{store: store, in: in, out: out, view: view}
}

// Check compares a captured artifact against the accepted baseline for its
// title.
//
//   - no baseline: the pending file is written and OutcomeNew returned
//   - baseline equal (after newline normalization on both sides): any stray
//     pending file is removed best-effort and OutcomeUnchanged returned
//   - baseline differs: the pending file is written and OutcomeMismatch
//     returned, carrying both snapshots
//
// Any I/O failure short-circuits with a store error instead of an outcome.
func (o *Orchestrator) Check(content, title string) (*CheckResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &EmptyTitleError{}
	}

	if _, err := o.store.EnsureRoot(); err != nil {
		return nil, err
	}

	snap := snapshot.New(title, content)

	accepted, err := o.store.ReadAccepted(title)
	if err != nil {
		return nil, err
	}

	if accepted == nil {
		if err := o.store.WritePending(snap); err != nil {
			return nil, err
		}
		return &CheckResult{Outcome: OutcomeNew, New: snap}, nil
	}

	if diff.NormalizeNewlines(accepted.Content) == diff.NormalizeNewlines(content) {
		o.store.RemovePending(title)
		return &CheckResult{Outcome: OutcomeUnchanged, New: snap, Accepted: accepted}, nil
	}

	if err := o.store.WritePending(snap); err != nil {
		return nil, err
	}
	return &CheckResult{Outcome: OutcomeMismatch, New: snap, Accepted: accepted}, nil
}

// =============================================================================
// INTERACTIVE REVIEW
// =============================================================================

// Review walks the pending snapshots one by one, prompting for a verdict on
// each. The pending set is enumerated once up front, never re-scanned
// mid-loop. Per-item failures are reported and the loop continues; quit
// stops immediately, leaving all remaining files untouched.
func (o *Orchestrator) Review() error {
	pending, err := o.store.ListPending()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(o.out, "No snapshots pending review.")
		return nil
	}

	total := len(pending)
	for i, path := range pending {
		snap, err := o.store.ReadPending(path)
		if err != nil {
			fmt.Fprintf(o.out, "Skipping %s: %v\n", filepath.Base(path), err)
			continue
		}

		accepted, err := o.store.ReadAccepted(snap.Title)
		if err != nil {
			fmt.Fprintf(o.out, "Skipping %s: %v\n", filepath.Base(path), err)
			continue
		}

		if accepted != nil {
			o.view.ShowDiff(accepted, snap, i+1, total)
		} else {
			o.view.ShowNew(snap, i+1, total)
		}

		quit, err := o.promptVerdict(path, snap.Title)
		if err != nil {
			// Input failure advances to the next file; it is not a quit.
			fmt.Fprintf(o.out, "%v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}

	return nil
}

// promptVerdict prompts until it gets a recognizable verdict and applies
// it. Empty or unrecognized input re-prompts without consuming a turn.
func (o *Orchestrator) promptVerdict(path, title string) (quit bool, err error) {
	for {
		input, err := o.in.ReadLine(promptText)
		if err != nil {
			return false, &UnreadableInputError{Err: err}
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "a", "accept":
			if err := o.store.Accept(path); err != nil {
				fmt.Fprintf(o.out, "%v\n", err)
			} else {
				fmt.Fprintf(o.out, "Accepted %q.\n", title)
			}
			return false, nil

		case "r", "reject":
			if err := o.store.Reject(path); err != nil {
				fmt.Fprintf(o.out, "%v\n", err)
			} else {
				fmt.Fprintf(o.out, "Rejected %q.\n", title)
			}
			return false, nil

		case "s", "skip":
			fmt.Fprintf(o.out, "Skipped %q.\n", title)
			return false, nil

		case "q", "quit":
			fmt.Fprintln(o.out, "Review stopped.")
			return true, nil

		default:
			// Re-prompt.
		}
	}
}

// =============================================================================
// BATCH REVIEW
// =============================================================================

// AcceptAll promotes every pending snapshot to its accepted baseline. No
// diff is computed or shown; per-item failures are reported and the loop
// continues.
func (o *Orchestrator) AcceptAll() error {
	return o.applyAll("Accepted", o.store.Accept)
}

// RejectAll renames every pending snapshot to its rejected form, leaving
// baselines untouched.
func (o *Orchestrator) RejectAll() error {
	return o.applyAll("Rejected", o.store.Reject)
}

func (o *Orchestrator) applyAll(verb string, apply func(string) error) error {
	pending, err := o.store.ListPending()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(o.out, "No snapshots pending review.")
		return nil
	}

	for _, path := range pending {
		if err := apply(path); err != nil {
			fmt.Fprintf(o.out, "%v\n", err)
			continue
		}
		fmt.Fprintf(o.out, "%s %s\n", verb, filepath.Base(path))
	}
	return nil
}
