// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package block

import "fmt"

// DefaultPalette returns the built-in palette: one template per kind,
// each with its own color.
func DefaultPalette() []Template {
	return []Template{
		{
			ID:    "variables",
			Kind:  KindVariables,
			Label: "Variable",
			Description: "Declare a **named value**.\n\n" +
				"```go\ncount := 0\n```",
			Style: Style{Foreground: "231", Background: "25", BorderColor: "75", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
		{
			ID:    "arithmetic",
			Kind:  KindArithmetic,
			Label: "Arithmetic",
			Description: "Combine values with `+`, `-`, `*`, `/`.\n\n" +
				"```go\ntotal = price * quantity\n```",
			Style: Style{Foreground: "231", Background: "28", BorderColor: "114", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
		{
			ID:    "conditions",
			Kind:  KindConditions,
			Label: "If / Else",
			Description: "Run the blocks below only when a *condition* holds.\n\n" +
				"```go\nif count > 10 {\n\treturn\n}\n```",
			Style: Style{Foreground: "232", Background: "178", BorderColor: "220", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
		{
			ID:    "array",
			Kind:  KindArray,
			Label: "Array",
			Description: "An ordered list of values.\n\n" +
				"```go\nitems := []int{1, 2, 3}\n```",
			Style: Style{Foreground: "231", Background: "97", BorderColor: "141", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
		{
			ID:    "cycle",
			Kind:  KindCycle,
			Label: "Loop",
			Description: "Repeat the blocks below.\n\n" +
				"```go\nfor i := 0; i < 3; i++ {\n}\n```",
			Style: Style{Foreground: "231", Background: "166", BorderColor: "208", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
		{
			ID:    "print",
			Kind:  KindPrint,
			Label: "Print",
			Description: "Write a value to the output.\n\n" +
				"```go\nfmt.Println(total)\n```",
			Style: Style{Foreground: "231", Background: "240", BorderColor: "250", Border: BorderRounded, Bold: true, PaddingLeft: 1, PaddingRight: 1},
		},
	}
}

// FindTemplate returns the template with the given ID.
func FindTemplate(palette []Template, id string) (Template, bool) {
	for _, template := range palette {
		if template.ID == id {
			return template, true
		}
	}
	return Template{}, false
}

// ValidatePalette checks that every template has a known kind, a
// non-empty unique ID, and a label.
func ValidatePalette(palette []Template) error {
	seen := make(map[string]bool, len(palette))
	for index, template := range palette {
		if template.ID == "" {
			return fmt.Errorf("palette[%d]: empty id", index)
		}
		if seen[template.ID] {
			return fmt.Errorf("palette[%d]: duplicate id %q", index, template.ID)
		}
		seen[template.ID] = true
		if _, err := ParseKind(string(template.Kind)); err != nil {
			return fmt.Errorf("palette[%d] (%s): %w", index, template.ID, err)
		}
		if template.Label == "" {
			return fmt.Errorf("palette[%d] (%s): empty label", index, template.ID)
		}
	}
	return nil
}
