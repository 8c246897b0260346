// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for calque.
package cli

import "strings"

// Command identifies one review workflow entry point.
type Command int

const (
	// CmdReview walks pending snapshots interactively
	CmdReview Command = iota
	// CmdAcceptAll accepts every pending snapshot without diffing
	CmdAcceptAll
	// CmdRejectAll rejects every pending snapshot without diffing
	CmdRejectAll
	// CmdHelp prints usage
	CmdHelp
)

// String returns the canonical command name.
func (c Command) String() string {
	switch c {
	case CmdReview:
		return "review"
	case CmdAcceptAll:
		return "accept-all"
	case CmdRejectAll:
		return "reject-all"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// commandNames maps every accepted spelling to its command. Canonical names
// first, then short aliases.
var commandNames = map[string]Command{
	"review":     CmdReview,
	"accept-all": CmdAcceptAll,
	"reject-all": CmdRejectAll,
	"help":       CmdHelp,
	"r":          CmdReview,
	"aa":         CmdAcceptAll,
	"ra":         CmdRejectAll,
	"h":          CmdHelp,
}

// Parse maps command-line arguments (excluding the program name) to a
// Command. No arguments means review; more than one argument is a usage
// error before any name lookup happens.
func Parse(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return CmdReview, nil
	case 1:
		// Fall through to name lookup.
	default:
		return 0, &TooManyCommandsError{Args: args}
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	cmd, ok := commandNames[name]
	if !ok {
		return 0, &UnknownCommandError{Input: args[0]}
	}
	return cmd, nil
}

// Usage is the help text printed for the help command and after usage
// errors.
const Usage = `calque - snapshot review

Usage:
  calque [command]

Commands:
  review       Review pending snapshots one by one (default)
  accept-all   Accept every pending snapshot
  reject-all   Reject every pending snapshot
  help         Show this help

Aliases: r, aa, ra, h
`
