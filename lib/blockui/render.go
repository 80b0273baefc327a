// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/blockbench/lib/block"
)

// lipglossBorder maps a block border name to a lipgloss border.
func lipglossBorder(border block.Border) lipgloss.Border {
	switch border {
	case block.BorderNormal:
		return lipgloss.NormalBorder()
	case block.BorderThick:
		return lipgloss.ThickBorder()
	case block.BorderDouble:
		return lipgloss.DoubleBorder()
	case block.BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func lipglossAlign(align block.Align) lipgloss.Position {
	switch align {
	case block.AlignCenter:
		return lipgloss.Center
	case block.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// renderBlock draws one block as exactly blockHeight lines of exactly
// width cells. The width is the border box: borders and padding are
// inside it.
func renderBlock(label string, kind block.Kind, style block.Style, width int, theme Theme) string {
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	borderColor := theme.KindColor(kind)
	if style.BorderColor != "" {
		borderColor = lipgloss.Color(style.BorderColor)
	}

	blockStyle := lipgloss.NewStyle().
		Border(lipglossBorder(style.Border)).
		BorderForeground(borderColor).
		Bold(style.Bold).
		Italic(style.Italic).
		Underline(style.Underline).
		PaddingLeft(style.PaddingLeft).
		PaddingRight(style.PaddingRight).
		Align(lipglossAlign(style.Align)).
		Width(innerWidth)
	if style.Foreground != "" {
		blockStyle = blockStyle.Foreground(lipgloss.Color(style.Foreground))
	}
	if style.Background != "" {
		blockStyle = blockStyle.Background(lipgloss.Color(style.Background))
	}

	// Keep the label on one line so every block is the same height.
	labelWidth := innerWidth - style.PaddingLeft - style.PaddingRight
	if labelWidth < 1 {
		labelWidth = 1
	}
	if ansi.StringWidth(label) > labelWidth {
		label = ansi.Truncate(label, labelWidth-1, "…")
	}
	return blockStyle.Render(label)
}

// renderItem draws a placed block at its layout width.
func renderItem(item block.Item, width int, theme Theme) string {
	return renderBlock(item.Label, item.Kind, item.Style, width, theme)
}

// renderTemplate draws a palette entry.
func renderTemplate(template block.Template, width int, theme Theme) string {
	return renderBlock(template.Label, template.Kind, template.Style, width, theme)
}

// renderDeleteAffordance draws the " × " control.
func renderDeleteAffordance(affordance block.DeleteAffordance, theme Theme) string {
	return lipgloss.NewStyle().
		Foreground(theme.DeleteForeground).
		Background(theme.DeleteBackground).
		Bold(true).
		Render(" " + affordance.Glyph + " ")
}

// fitLines pads or truncates content to exactly width x height cells.
func fitLines(content string, width, height int) []string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for index, line := range lines {
		lineWidth := ansi.StringWidth(line)
		switch {
		case lineWidth > width:
			lines[index] = ansi.Truncate(line, width, "")
		case lineWidth < width:
			lines[index] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return lines
}

// indentBlock prefixes every line of a multi-line string.
func indentBlock(content string, columns int) string {
	prefix := strings.Repeat(" ", columns)
	lines := strings.Split(content, "\n")
	for index, line := range lines {
		lines[index] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// stackBlocks joins rendered blocks with blockGap blank lines between
// them.
func stackBlocks(blocks []string) string {
	return strings.Join(blocks, strings.Repeat("\n", blockGap+1))
}

// renderPalettePane draws the palette column without the divider.
func (model Model) renderPalettePane(width, height int) []string {
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	content := " " + titleStyle.Render("Blocks")

	palette := model.controller.Palette()
	if len(palette) > 0 {
		blocks := make([]string, len(palette))
		for index, template := range palette {
			blocks[index] = indentBlock(renderTemplate(template, width-2, model.theme), 1)
		}
		content += "\n" + stackBlocks(blocks)
	}
	return fitLines(content, width, height)
}

// renderWorkspacePane draws the workspace column: placed blocks, or
// the placeholder while the workspace is empty.
func (model Model) renderWorkspacePane(width, height int) []string {
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	content := strings.Repeat(" ", workspacePadding) + titleStyle.Render("Workspace")

	target := model.controller.Workspace()
	switch {
	case target == nil:
		// No drop target configured: the pane stays blank.
	case target.PlaceholderVisible():
		content += "\n" + model.renderPlaceholder(width-2*workspacePadding)
	default:
		itemWidth := model.layout.itemWidth()
		items := target.Items()
		blocks := make([]string, len(items))
		for index, item := range items {
			blocks[index] = indentBlock(renderItem(item, itemWidth, model.theme), workspacePadding)
		}
		content += "\n" + stackBlocks(blocks)
	}
	return fitLines(content, width, height)
}

func (model Model) renderPlaceholder(width int) string {
	if width < 4 {
		width = 4
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(model.theme.PlaceholderBorder).
		Foreground(model.theme.PlaceholderForeground).
		Align(lipgloss.Center).
		Width(width - 2)
	text := model.placeholder
	if ansi.StringWidth(text) > width-2 {
		text = ansi.Truncate(text, width-2, "")
	}
	return indentBlock(style.Render(text), workspacePadding)
}

// renderHeader draws the title bar with the block count on the right.
func (model Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := titleStyle.Render(" Blockbench")
	count := 0
	if target := model.controller.Workspace(); target != nil {
		count = target.Len()
	}
	noun := "blocks"
	if count == 1 {
		noun = "block"
	}
	right := countStyle.Render(fmt.Sprintf("%d %s ", count, noun))

	gap := model.width - ansi.StringWidth(title) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(title, model.width, "")
	}
	return title + strings.Repeat(" ", gap) + right
}

// renderStatusBar shows a log notice, the last activity, or the help
// line, in that order of preference.
func (model Model) renderStatusBar() string {
	var line string
	switch {
	case model.notice != nil && model.notice.level != noticeActivity:
		color := model.theme.WarnForeground
		if model.notice.level == noticeError {
			color = model.theme.ErrorForeground
		}
		line = lipgloss.NewStyle().Foreground(color).Render(" " + model.notice.text)
	case model.notice != nil:
		line = lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(" " + model.notice.text)
	default:
		help := " drag a block into the workspace · click × to remove · " +
			model.keys.Quit.Help().Key + " " + model.keys.Quit.Help().Desc
		line = lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(help)
	}
	if ansi.StringWidth(line) > model.width {
		line = ansi.Truncate(line, model.width, "…")
	}
	return line
}
