// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured parse errors for the calque CLI.
package cli

import (
	"fmt"
	"strings"
)

// UnknownCommandError reports an argument that names no command. The
// original input is kept verbatim so suggestion and display stay faithful
// to what the user typed.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Input)
}

// TooManyCommandsError reports an invocation with more than one argument.
type TooManyCommandsError struct {
	Args []string
}

func (e *TooManyCommandsError) Error() string {
	return fmt.Sprintf("expected at most one command, got %d: %s",
		len(e.Args), strings.Join(e.Args, " "))
}
