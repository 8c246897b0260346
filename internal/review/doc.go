// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review drives the snapshot review workflow.
//
// The orchestrator sits between the snapshot store and the presentation
// layer: Check compares a captured artifact against its accepted baseline,
// Review walks the pending snapshots one by one prompting for a verdict,
// and AcceptAll/RejectAll apply a verdict to every pending snapshot.
//
// Interactive input comes through the LineReader interface and output
// through an io.Writer plus a Presenter, so the whole workflow is testable
// with scripted input and a recording view, without a terminal.
package review
