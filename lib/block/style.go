// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package block

import "fmt"

// Border names the frame drawn around a block.
type Border string

const (
	BorderRounded Border = "rounded"
	BorderNormal  Border = "normal"
	BorderThick   Border = "thick"
	BorderDouble  Border = "double"
	BorderHidden  Border = "hidden"
)

// ParseBorder validates a border name. The empty string means rounded.
func ParseBorder(name string) (Border, error) {
	switch Border(name) {
	case "":
		return BorderRounded, nil
	case BorderRounded, BorderNormal, BorderThick, BorderDouble, BorderHidden:
		return Border(name), nil
	}
	return "", fmt.Errorf("unknown border %q", name)
}

// Align is the horizontal placement of the label inside a block.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign validates an alignment name. The empty string means left.
func ParseAlign(name string) (Align, error) {
	switch Align(name) {
	case "":
		return AlignLeft, nil
	case AlignLeft, AlignCenter, AlignRight:
		return Align(name), nil
	}
	return "", fmt.Errorf("unknown alignment %q", name)
}

// Style is the enumerated set of visual attributes that a placed item
// inherits from its template. Colors are lipgloss color strings: an
// ANSI-256 index ("75") or a hex value ("#5fafff").
type Style struct {
	Foreground  string
	Background  string
	BorderColor string
	Border      Border
	Bold        bool
	Italic      bool
	Underline   bool

	// Horizontal padding inside the border, in cells.
	PaddingLeft  int
	PaddingRight int

	Align Align
}

// Clone returns a field-by-field copy. Style holds no reference types
// today; Clone is the single place to extend if it ever does.
func (style Style) Clone() Style {
	return Style{
		Foreground:   style.Foreground,
		Background:   style.Background,
		BorderColor:  style.BorderColor,
		Border:       style.Border,
		Bold:         style.Bold,
		Italic:       style.Italic,
		Underline:    style.Underline,
		PaddingLeft:  style.PaddingLeft,
		PaddingRight: style.PaddingRight,
		Align:        style.Align,
	}
}

// Display is the box display mode of a placed item.
type Display string

// DisplayBlock stacks items vertically, one per row band.
const DisplayBlock Display = "block"

// BoxSizing controls whether borders and padding count toward width.
type BoxSizing string

// BoxSizingBorderBox includes borders and padding in the width.
const BoxSizingBorderBox BoxSizing = "border-box"

// Layout is forced onto every placed item regardless of the template:
// items fill their container's width and are never draggable again.
type Layout struct {
	Display   Display
	FullWidth bool
	BoxSizing BoxSizing
	Draggable bool
}

// StackedLayout returns the layout of a vertically stacked list item.
func StackedLayout() Layout {
	return Layout{
		Display:   DisplayBlock,
		FullWidth: true,
		BoxSizing: BoxSizingBorderBox,
		Draggable: false,
	}
}

// Corner names a corner of an item's box.
type Corner string

// CornerTopRight is where the delete affordance sits.
const CornerTopRight Corner = "top-right"

// DeleteAffordance is the control overlaid on each placed item that
// removes it from the workspace.
type DeleteAffordance struct {
	Corner Corner
	Glyph  string
}

// DefaultDeleteAffordance returns the affordance attached to every item.
func DefaultDeleteAffordance() DeleteAffordance {
	return DeleteAffordance{Corner: CornerTopRight, Glyph: "×"}
}
