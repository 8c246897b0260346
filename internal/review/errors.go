// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Orchestration-level error values.
package review

import "fmt"

// EmptyTitleError reports a check call with an empty or absent title.
type EmptyTitleError struct{}

func (e *EmptyTitleError) Error() string {
	return "snapshot title must not be empty"
}

// UnreadableInputError reports a failure to read interactive input, such as
// end of input on a closed stdin. During review it is reported per item and
// the loop advances; it never aborts the remaining items.
type UnreadableInputError struct {
	Err error
}

func (e *UnreadableInputError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *UnreadableInputError) Unwrap() error {
	return e.Err
}
