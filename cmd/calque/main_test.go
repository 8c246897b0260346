// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jeranaias/calque/internal/cli"
	"github.com/jeranaias/calque/internal/config"
)

func TestReportError(t *testing.T) {
	out := &bytes.Buffer{}

	reportError(out, errors.New("storage root unavailable"))

	got := out.String()
	if !strings.Contains(got, "error:") {
		t.Errorf("Expected error prefix, got %q", got)
	}
	if !strings.Contains(got, "storage root unavailable") {
		t.Errorf("Expected failure detail, got %q", got)
	}
}

// A broken project config surfaces from run as an error value for main to
// report; it never terminates the process itself.
func TestRunReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	bad := []byte("dir = [not toml")
	if err := os.WriteFile(config.FileName, bad, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err = run(cli.CmdReview)
	if err == nil {
		t.Fatal("Expected a config parse error")
	}
	if !strings.Contains(err.Error(), config.FileName) {
		t.Errorf("Expected the config file named in the error, got %v", err)
	}
}
