// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/blockbench/lib/block"
)

// stripped renders markdown and returns ANSI-stripped visible text.
func stripped(input string, width int) string {
	return ansi.Strip(renderTerminalMarkdown(input, DefaultTheme, width))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if result := renderTerminalMarkdown("", DefaultTheme, 40); result != "" {
		t.Errorf("expected empty string for empty input, got %q", result)
	}
}

func TestRenderMarkdownParagraphReflow(t *testing.T) {
	input := "Declare a value\nthat later blocks\ncan read."
	result := stripped(input, 80)

	if strings.Contains(result, "\n") {
		t.Errorf("expected a single line at width 80, got:\n%s", result)
	}
	if !strings.Contains(result, "value that later") {
		t.Errorf("expected soft break converted to space, got:\n%s", result)
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	input := "Run the blocks below only when a condition holds and skip them otherwise."
	result := stripped(input, 24)

	for _, line := range strings.Split(result, "\n") {
		if width := ansi.StringWidth(line); width > 24 {
			t.Errorf("line %q is %d cells wide, want at most 24", line, width)
		}
	}
}

func TestRenderMarkdownEmphasisKeepsText(t *testing.T) {
	result := stripped("Declare a **named value** and *use* it.", 80)
	if result != "Declare a named value and use it." {
		t.Errorf("got %q", result)
	}
}

func TestRenderMarkdownCodeSpan(t *testing.T) {
	result := stripped("Combine with `+` and `-`.", 80)
	if !strings.Contains(result, "Combine with + and -.") {
		t.Errorf("code span text missing, got %q", result)
	}
}

func TestRenderMarkdownFencedCode(t *testing.T) {
	input := "Example:\n\n```go\ncount := 0\n```"
	raw := renderTerminalMarkdown(input, DefaultTheme, 40)
	result := ansi.Strip(raw)

	if !strings.Contains(result, "count := 0") {
		t.Errorf("fenced code missing, got:\n%s", result)
	}
	if !strings.Contains(raw, "\x1b[") {
		t.Error("expected highlighted code to contain ANSI escapes")
	}
}

func TestRenderMarkdownLists(t *testing.T) {
	input := "- first\n- second\n\n1. one\n2. two"
	result := stripped(input, 40)

	for _, want := range []string{"• first", "• second", "1. one", "2. two"} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in:\n%s", want, result)
		}
	}
}

func TestRenderMarkdownNestedListIndent(t *testing.T) {
	input := "- outer\n  - inner"
	lines := strings.Split(stripped(input, 40), "\n")

	var inner string
	for _, line := range lines {
		if strings.Contains(line, "inner") {
			inner = line
		}
	}
	if !strings.HasPrefix(inner, "  • inner") {
		t.Errorf("nested item = %q, want it indented under the outer bullet", inner)
	}
}

func TestRenderTooltipUniformWidth(t *testing.T) {
	for _, template := range block.DefaultPalette() {
		lines := renderTooltip(template, DefaultTheme, tooltipMaxWidth)
		if len(lines) == 0 {
			t.Fatalf("%s: no tooltip lines", template.ID)
		}
		if !strings.Contains(ansi.Strip(lines[0]), template.Label) {
			t.Errorf("%s: first line %q does not carry the label", template.ID, ansi.Strip(lines[0]))
		}
		for index, line := range lines {
			if width := ansi.StringWidth(line); width != tooltipMaxWidth {
				t.Errorf("%s: line %d width = %d, want %d", template.ID, index, width, tooltipMaxWidth)
			}
		}
	}
}

func TestRenderTooltipCapsLongDescriptions(t *testing.T) {
	template := block.Template{
		ID:          "long",
		Kind:        block.KindPrint,
		Label:       "Long",
		Description: strings.Repeat("- entry\n", 40),
	}
	lines := renderTooltip(template, DefaultTheme, tooltipMaxWidth)

	// Header, blank separator, capped body, ellipsis row.
	if want := 2 + tooltipMaxLines + 1; len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
}
