// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/blockbench/lib/block"
)

// Theme defines the color palette for the block builder. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// Block colors come from each template's own style; the theme only
// supplies chrome and the fallbacks used when a template leaves a
// color unset.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Workspace empty state.
	PlaceholderForeground lipgloss.Color
	PlaceholderBorder     lipgloss.Color

	// Delete affordance on placed blocks.
	DeleteForeground lipgloss.Color
	DeleteBackground lipgloss.Color

	// Status bar log notices.
	WarnForeground  lipgloss.Color
	ErrorForeground lipgloss.Color

	// Hover tooltips.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color

	// KindColors is the border color used for a kind when its
	// template does not set one.
	KindColors map[block.Kind]lipgloss.Color
}

// KindColor returns the fallback border color for a block kind.
// Unknown kinds return BorderColor.
func (theme Theme) KindColor(kind block.Kind) lipgloss.Color {
	if color, ok := theme.KindColors[kind]; ok {
		return color
	}
	return theme.BorderColor
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	PlaceholderForeground: lipgloss.Color("243"),
	PlaceholderBorder:     lipgloss.Color("238"),

	DeleteForeground: lipgloss.Color("231"),
	DeleteBackground: lipgloss.Color("196"), // #ff4444 in 256 colors

	WarnForeground:  lipgloss.Color("220"),
	ErrorForeground: lipgloss.Color("196"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),

	KindColors: map[block.Kind]lipgloss.Color{
		block.KindVariables:  lipgloss.Color("75"),
		block.KindArithmetic: lipgloss.Color("114"),
		block.KindConditions: lipgloss.Color("220"),
		block.KindArray:      lipgloss.Color("141"),
		block.KindCycle:      lipgloss.Color("208"),
		block.KindPrint:      lipgloss.Color("250"),
	},
}
