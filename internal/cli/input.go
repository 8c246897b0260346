// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// input.go - Interactive input with history and line editing.
package cli

import (
	"strings"

	"github.com/peterh/liner"
)

// LinerReader reads review verdicts on a real terminal with line editing
// and in-session history. It implements review.LineReader. Only use it when
// stdin is a TTY; liner takes the terminal out of canonical mode.
type LinerReader struct {
	line *liner.State
}

// NewLinerReader initializes the terminal for line editing. Callers must
// Close it before the process exits to restore the terminal state.
func NewLinerReader() *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerReader{line: line}
}

// ReadLine prompts for one line. Non-empty answers join the session
// history for arrow-key recall. Ctrl-C surfaces as liner.ErrPromptAborted.
func (r *LinerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal to canonical mode.
func (r *LinerReader) Close() {
	r.line.Close()
}
