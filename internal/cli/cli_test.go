// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"no args defaults to review", nil, CmdReview},
		{"review", []string{"review"}, CmdReview},
		{"review alias", []string{"r"}, CmdReview},
		{"accept-all", []string{"accept-all"}, CmdAcceptAll},
		{"accept-all alias", []string{"aa"}, CmdAcceptAll},
		{"reject-all", []string{"reject-all"}, CmdRejectAll},
		{"reject-all alias", []string{"ra"}, CmdRejectAll},
		{"help", []string{"help"}, CmdHelp},
		{"help alias", []string{"h"}, CmdHelp},
		{"case insensitive", []string{"REVIEW"}, CmdReview},
		{"surrounding whitespace", []string{"  review "}, CmdReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) returned error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse([]string{"reviwe"})

	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownCommandError, got %v", err)
	}
	if unknown.Input != "reviwe" {
		t.Errorf("Expected input to be kept verbatim, got %q", unknown.Input)
	}
}

func TestParseTooManyCommands(t *testing.T) {
	_, err := Parse([]string{"review", "extra"})

	var tooMany *TooManyCommandsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("Expected TooManyCommandsError, got %v", err)
	}
	if len(tooMany.Args) != 2 {
		t.Errorf("Expected 2 args recorded, got %d", len(tooMany.Args))
	}
}

// Two arguments where the first is gibberish is still a count error, not an
// unknown-command error.
func TestParseTooManyBeforeLookup(t *testing.T) {
	_, err := Parse([]string{"bogus", "review"})

	var tooMany *TooManyCommandsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("Expected TooManyCommandsError, got %v", err)
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CmdReview, "review"},
		{CmdAcceptAll, "accept-all"},
		{CmdRejectAll, "reject-all"},
		{CmdHelp, "help"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
