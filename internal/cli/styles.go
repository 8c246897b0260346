// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles and color-profile setup for the calque CLI.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection
package cli

import "github.com/charmbracelet/lipgloss"

// init configures the lipgloss color profile from terminal capabilities so
// every style in the process, including the render package, honors
// NO_COLOR, FORCE_COLOR, and TTY detection.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// ErrorStyle marks failure messages.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}).
	Bold(true)
