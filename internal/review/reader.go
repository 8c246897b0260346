// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reader.go - Injectable line input for the review prompt.
package review

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader supplies one line of user input per prompt. Implementations
// exist for plain readers (here) and for an interactive terminal (in the
// cli package); tests feed scripted sequences.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ScannerReader is a LineReader over any io.Reader. The prompt is echoed to
// out before reading, so piped sessions still show what was asked.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader builds a ScannerReader. out may be nil to suppress
// prompt echoing.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine prints the prompt and returns the next input line without its
// newline. End of input surfaces as io.EOF.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	if r.out != nil {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
