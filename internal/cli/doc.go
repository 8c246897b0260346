// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the calque command line and handles terminal concerns.
//
// # Key Types
//
//   - Command: the closed set of review commands
//   - UnknownCommandError / TooManyCommandsError: structured parse failures
//   - LinerReader: interactive input with history and line editing
//
// Parse maps arguments to a Command; Suggest proposes a close command for a
// typo using grapheme-level edit distance. Terminal helpers decide whether
// interactive prompts and colors are appropriate.
package cli
