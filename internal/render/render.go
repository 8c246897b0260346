// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Lip Gloss presentation of snapshots and diffs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/calque/internal/diff"
	"github.com/jeranaias/calque/internal/snapshot"
)

// =============================================================================
// PALETTE
// =============================================================================

// Colors use AdaptiveColor so the same view reads well on light and dark
// terminals.
var (
	cyan      = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	emerald   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	rose      = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}
	textMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
	overlay   = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}
)

// =============================================================================
// VIEW
// =============================================================================

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// View renders review output to a writer. It implements review.Presenter.
type View struct {
	out   io.Writer
	width int

	headerStyle  lipgloss.Style
	counterStyle lipgloss.Style
	boxStyle     lipgloss.Style
	oldStyle     lipgloss.Style
	newStyle     lipgloss.Style
	sharedStyle  lipgloss.Style
	numStyle     lipgloss.Style
	labelStyle   lipgloss.Style
}

// NewView builds a view for the given writer and display width. A width of
// zero or less falls back to DefaultWidth.
func NewView(out io.Writer, width int) *View {
	if width <= 0 {
		width = DefaultWidth
	}
	return &View{
		out:   out,
		width: width,

		headerStyle:  lipgloss.NewStyle().Foreground(cyan).Bold(true),
		counterStyle: lipgloss.NewStyle().Foreground(textMuted),
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(overlay).
			Padding(0, 1),
		oldStyle:    lipgloss.NewStyle().Foreground(rose),
		newStyle:    lipgloss.NewStyle().Foreground(emerald),
		sharedStyle: lipgloss.NewStyle().Foreground(textMuted),
		numStyle:    lipgloss.NewStyle().Foreground(textMuted),
		labelStyle:  lipgloss.NewStyle().Foreground(textMuted).Italic(true),
	}
}

// ShowNew displays a pending snapshot that has no accepted baseline: the
// header, a label, and the content with line numbers.
func (v *View) ShowNew(pending *snapshot.Snapshot, index, total int) {
	var b strings.Builder

	b.WriteString(v.renderHeader(pending.Title, index, total))
	b.WriteString("\n")
	b.WriteString(v.labelStyle.Render("new snapshot, no accepted baseline"))
	b.WriteString("\n\n")

	lines := diff.LineByLine("", pending.Content)
	for _, line := range lines {
		b.WriteString(v.renderLine(line))
		b.WriteString("\n")
	}

	fmt.Fprintln(v.out, v.boxStyle.Width(v.contentWidth()).Render(strings.TrimRight(b.String(), "\n")))
}

// ShowDiff displays a pending snapshot against its accepted baseline as a
// line diff: removed baseline lines in rose, added lines in emerald, shared
// lines dimmed.
func (v *View) ShowDiff(accepted, pending *snapshot.Snapshot, index, total int) {
	var b strings.Builder

	b.WriteString(v.renderHeader(pending.Title, index, total))
	b.WriteString("\n")
	b.WriteString(v.labelStyle.Render("differs from accepted baseline"))
	b.WriteString("\n\n")

	lines := diff.LineByLine(accepted.Content, pending.Content)
	for _, line := range lines {
		b.WriteString(v.renderLine(line))
		b.WriteString("\n")
	}

	fmt.Fprintln(v.out, v.boxStyle.Width(v.contentWidth()).Render(strings.TrimRight(b.String(), "\n")))
}

// =============================================================================
// RENDERING
// =============================================================================

// renderHeader renders the title and the position counter.
func (v *View) renderHeader(title string, index, total int) string {
	counter := fmt.Sprintf("(%d of %d)", index, total)
	return v.headerStyle.Render(title) + " " + v.counterStyle.Render(counter)
}

// renderLine renders one diff line: a marker, the line number in the
// numbering scheme of its side, and the text truncated to the display
// width.
func (v *View) renderLine(line diff.Line) string {
	var style lipgloss.Style
	switch line.Kind {
	case diff.KindOld:
		style = v.oldStyle
	case diff.KindNew:
		style = v.newStyle
	default:
		style = v.sharedStyle
	}

	gutter := fmt.Sprintf("%s %4d", line.Kind.Prefix(), line.Number)
	text := runewidth.Truncate(line.Text, v.textWidth(), "…")

	return v.numStyle.Render(gutter) + " " + style.Render(text)
}

// contentWidth is the inner width of the surrounding box.
func (v *View) contentWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// textWidth is the room left for line text after the gutter.
func (v *View) textWidth() int {
	w := v.contentWidth() - 8
	if w < 10 {
		w = 10
	}
	return w
}
