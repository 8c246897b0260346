// calque - snapshot review command.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/calque/internal/cli"
	"github.com/jeranaias/calque/internal/config"
	"github.com/jeranaias/calque/internal/render"
	"github.com/jeranaias/calque/internal/review"
	"github.com/jeranaias/calque/internal/snapshot"
)

func main() {
	cmd, err := cli.Parse(os.Args[1:])
	if err != nil {
		cmd = resolveParseError(err)
	}

	if cmd == cli.CmdHelp {
		fmt.Print(cli.Usage)
		return
	}

	// Failures are reported as messages; the process still completes
	// normally.
	if err := run(cmd); err != nil {
		reportError(os.Stderr, err)
	}
}

// reportError prints a run failure in the shared error style.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", cli.ErrorStyle.Render("error:"), err)
}

// resolveParseError turns a parse failure into a command to run: a typo
// close to a known command offers a did-you-mean prompt, everything else
// falls back to help.
func resolveParseError(err error) cli.Command {
	var unknown *cli.UnknownCommandError
	if !errors.As(err, &unknown) {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		return cli.CmdHelp
	}

	suggestion := cli.Suggest(unknown.Input)
	if suggestion == "" {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		return cli.CmdHelp
	}

	fmt.Fprintf(os.Stderr, "%v\n", err)
	fmt.Fprintf(os.Stderr, "did you mean %q? [y/N] ", suggestion)

	answer := readAnswer()
	if answer == "y" || answer == "yes" {
		cmd, err := cli.Parse([]string{suggestion})
		if err == nil {
			return cmd
		}
	}
	return cli.CmdHelp
}

// readAnswer reads one lowercase line from stdin; any failure reads as "no".
func readAnswer() string {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text()))
}

// run dispatches a review command against the configured store.
func run(cmd cli.Command) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	store := snapshot.NewStore(cfg)
	view := render.NewView(os.Stdout, cli.GetTerminalWidth())

	switch cmd {
	case cli.CmdReview:
		in, cleanup := newLineReader()
		defer cleanup()
		return review.NewOrchestrator(store, in, os.Stdout, view).Review()

	case cli.CmdAcceptAll:
		return review.NewOrchestrator(store, nil, os.Stdout, view).AcceptAll()

	case cli.CmdRejectAll:
		return review.NewOrchestrator(store, nil, os.Stdout, view).RejectAll()

	default:
		fmt.Print(cli.Usage)
		return nil
	}
}

// newLineReader picks line-edited input on a terminal, a plain scanner
// otherwise (piped input, CI).
func newLineReader() (review.LineReader, func()) {
	if cli.IsTTY() {
		r := cli.NewLinerReader()
		return r, r.Close
	}
	return review.NewScannerReader(os.Stdin, os.Stdout), func() {}
}
