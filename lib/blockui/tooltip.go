// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/tui"
)

// Theme is the shared viewer color palette.
type Theme = tui.Theme

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = tui.DefaultTheme

// tooltipMaxWidth is the widest a tooltip box gets, including one
// cell of padding on each side.
const tooltipMaxWidth = 44

// tooltipMaxLines caps the rendered description so a long one cannot
// cover the whole screen.
const tooltipMaxLines = 12

// tooltipState is a visible hover tooltip for a palette template.
type tooltipState struct {
	templateID string

	// Requested top-left corner; clamped to the screen when drawn.
	anchorX int
	anchorY int
}

// renderTooltip produces the tooltip box for a template: the label in
// bold, then the rendered markdown description. Every line has the
// same visible width and a solid background.
func renderTooltip(template block.Template, theme Theme, maxWidth int) []string {
	if maxWidth < 12 {
		maxWidth = 12
	}
	innerWidth := maxWidth - 2

	backgroundStyle := lipgloss.NewStyle().Background(theme.TooltipBackground)
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.KindColor(template.Kind)).
		Background(theme.TooltipBackground).
		Bold(true)
	kindStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.TooltipBackground)

	title := template.Label
	if ansi.StringWidth(title) > innerWidth {
		title = ansi.Truncate(title, innerWidth-1, "…")
	}
	header := titleStyle.Render(title)
	if kind := "  " + string(template.Kind); ansi.StringWidth(title+kind) <= innerWidth {
		header += kindStyle.Render(kind)
	}

	lines := []string{tui.PadOverlayLine(header, innerWidth, backgroundStyle)}

	description := renderTerminalMarkdown(template.Description, theme, innerWidth)
	if description == "" {
		return lines
	}
	lines = append(lines, tui.PadOverlayLine("", innerWidth, backgroundStyle))
	for index, line := range strings.Split(description, "\n") {
		if index >= tooltipMaxLines {
			lines = append(lines, tui.PadOverlayLine(kindStyle.Render("…"), innerWidth, backgroundStyle))
			break
		}
		if ansi.StringWidth(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "")
		}
		lines = append(lines, tui.PadOverlayLine(line, innerWidth, backgroundStyle))
	}
	return lines
}
