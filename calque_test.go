// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calque

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/calque/internal/config"
	"github.com/jeranaias/calque/internal/snapshot"
)

// fakeTB records Fatalf calls instead of stopping the test.
type fakeTB struct {
	failed  bool
	message string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = true
	f.message = fmt.Sprintf(format, args...)
}

func newTestRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), config.DefaultDir)
	r, err := New(WithDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, dir
}

func TestCheckNewFailsWithReviewHint(t *testing.T) {
	r, dir := newTestRunner(t)
	tb := &fakeTB{}

	r.Check(tb, "greeting", "hello")

	if !tb.failed {
		t.Fatal("Expected a new snapshot to fail the test")
	}
	if !strings.Contains(tb.message, "no accepted baseline") {
		t.Errorf("Expected baseline hint, got %q", tb.message)
	}
	if !strings.Contains(tb.message, "cmd/calque review") {
		t.Errorf("Expected review command in message, got %q", tb.message)
	}
	if _, err := os.Stat(filepath.Join(dir, "greeting"+snapshot.PendingSuffix)); err != nil {
		t.Errorf("Expected pending snapshot file, got %v", err)
	}
}

func TestCheckPassesAfterAccept(t *testing.T) {
	r, dir := newTestRunner(t)
	tb := &fakeTB{}

	r.Check(tb, "stable", "same output")
	if !tb.failed {
		t.Fatal("Expected first check to fail")
	}

	pending := filepath.Join(dir, "stable"+snapshot.PendingSuffix)
	accepted := filepath.Join(dir, "stable"+snapshot.AcceptedSuffix)
	if err := os.Rename(pending, accepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	tb = &fakeTB{}
	r.Check(tb, "stable", "same output")
	if tb.failed {
		t.Fatalf("Expected check to pass after accept, got %q", tb.message)
	}
	if _, err := os.Stat(pending); !os.IsNotExist(err) {
		t.Error("Expected stray pending file to be removed on pass")
	}
}

func TestCheckMismatchFails(t *testing.T) {
	r, dir := newTestRunner(t)
	tb := &fakeTB{}

	r.Check(tb, "drift", "v1")
	pending := filepath.Join(dir, "drift"+snapshot.PendingSuffix)
	accepted := filepath.Join(dir, "drift"+snapshot.AcceptedSuffix)
	if err := os.Rename(pending, accepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	tb = &fakeTB{}
	r.Check(tb, "drift", "v2")
	if !tb.failed {
		t.Fatal("Expected mismatch to fail the test")
	}
	if !strings.Contains(tb.message, "differs from the accepted baseline") {
		t.Errorf("Expected mismatch message, got %q", tb.message)
	}
}

func TestCheckEmptyTitleFails(t *testing.T) {
	r, _ := newTestRunner(t)
	tb := &fakeTB{}

	r.Check(tb, "", "content")

	if !tb.failed {
		t.Fatal("Expected empty title to fail the test")
	}
	if !strings.Contains(tb.message, "title") {
		t.Errorf("Expected title error in message, got %q", tb.message)
	}
}

func TestNewAppliesOptionsInOrder(t *testing.T) {
	base := config.Default()
	base.Dir = filepath.Join(t.TempDir(), "from-config")
	override := filepath.Join(t.TempDir(), "from-dir")

	r, err := New(WithConfig(base), WithDir(override))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tb := &fakeTB{}
	r.Check(tb, "ordered", "x")
	if _, err := os.Stat(filepath.Join(override, "ordered"+snapshot.PendingSuffix)); err != nil {
		t.Errorf("Expected later option to win, got %v", err)
	}
}
