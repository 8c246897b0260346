// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calque is a snapshot testing library for Go.
//
// A test captures a text artifact under a stable title and hands it to
// Check. The first capture fails the test and leaves a pending snapshot on
// disk; once a human accepts it with the calque command, re-runs that
// produce the same text pass. Any later drift fails the test again with a
// fresh pending snapshot to review.
//
// # Usage
//
//	func TestRenderWidget(t *testing.T) {
//		out := RenderWidget()
//		calque.Check(t, "widget render", out)
//	}
//
// Pending snapshots are reviewed interactively:
//
//	go run github.com/jeranaias/calque/cmd/calque review
package calque

import (
	"fmt"
	"sync"

	"github.com/jeranaias/calque/internal/config"
	"github.com/jeranaias/calque/internal/review"
	"github.com/jeranaias/calque/internal/snapshot"
)

// reviewCommand is the invocation quoted in failure messages.
const reviewCommand = "go run github.com/jeranaias/calque/cmd/calque review"

// TB is the subset of testing.TB that Check needs. *testing.T and
// *testing.B satisfy it.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner performs snapshot checks against one storage root. The zero value
// is not usable; build one with New.
type Runner struct {
	orch *review.Orchestrator
}

// Option configures a Runner.
type Option func(*config.Config)

// WithDir overrides the snapshot storage directory.
func WithDir(dir string) Option {
	return func(cfg *config.Config) {
		cfg.Dir = dir
	}
}

// WithConfig replaces the discovered configuration entirely.
func WithConfig(cfg config.Config) Option {
	return func(target *config.Config) {
		*target = cfg
	}
}

// New builds a Runner. Configuration is discovered from the working
// directory (.calque.toml, then the CALQUE_DIR environment variable), then
// options apply on top.
func New(opts ...Option) (*Runner, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := snapshot.NewStore(cfg)
	return &Runner{orch: review.NewOrchestrator(store, nil, nil, nil)}, nil
}

// Check compares content against the accepted baseline for title and fails
// the test unless they match. A missing baseline or a mismatch leaves a
// pending snapshot for review; storage failures fail the test directly.
func (r *Runner) Check(t TB, title, content string) {
	t.Helper()

	res, err := r.orch.Check(content, title)
	if err != nil {
		t.Fatalf("snapshot %q: %v", title, err)
		return
	}

	switch res.Outcome {
	case review.OutcomeUnchanged:
		// Pass.
	case review.OutcomeNew:
		t.Fatalf("snapshot %q: no accepted baseline; a pending snapshot was written\nreview it with: %s",
			title, reviewCommand)
	case review.OutcomeMismatch:
		t.Fatalf("snapshot %q: content differs from the accepted baseline; a pending snapshot was written\nreview it with: %s",
			title, reviewCommand)
	default:
		t.Fatalf("snapshot %q: unexpected outcome %v", title, res.Outcome)
	}
}

// =============================================================================
// PACKAGE-LEVEL CHECK
// =============================================================================

var (
	defaultRunner     *Runner
	defaultRunnerErr  error
	defaultRunnerOnce sync.Once
)

// Check is the package-level form of Runner.Check using the discovered
// configuration. The runner is built once, on first use.
func Check(t TB, title, content string) {
	t.Helper()

	defaultRunnerOnce.Do(func() {
		defaultRunner, defaultRunnerErr = New()
	})
	if defaultRunnerErr != nil {
		t.Fatalf("snapshot %q: %v", title, defaultRunnerErr)
		return
	}

	defaultRunner.Check(t, title, content)
}

// String implements fmt.Stringer for debugging.
func (r *Runner) String() string {
	return fmt.Sprintf("calque.Runner(%v)", r.orch)
}
