// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The goldmark parser is stateless between calls and safe to share.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParserInstance
}

// wrapBreakpoints are the extra characters ansi.Wrap may break after.
const wrapBreakpoints = " ,.;-+|"

// renderTerminalMarkdown renders a template description as styled
// terminal text no wider than width. Soft line breaks reflow into
// spaces; fenced code is syntax highlighted.
func renderTerminalMarkdown(input string, theme Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Force ANSI256: the output always lands in the TUI, and
	// auto-detection yields uncolored text when there is no TTY (tests).
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST directly. Inline content
// accumulates per block and is wrapped as a unit when the block
// closes.
type markdownRenderer struct {
	source      []byte
	theme       Theme
	width       int
	lipRenderer *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	// Counters rather than booleans so nested emphasis unwinds
	// correctly.
	boldCount          int
	italicCount        int
	strikethroughCount int

	listStack     []listState
	bulletWidths  []int
	pendingBullet string
	indent        int
}

type listState struct {
	ordered bool
	counter int
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) contentWidth() int {
	width := renderer.width - renderer.indent
	if width < 10 {
		width = 10
	}
	return width
}

// writeBlock emits lines with the current list indentation. The first
// line takes the pending bullet when one is set.
func (renderer *markdownRenderer) writeBlock(content string) {
	padding := strings.Repeat(" ", renderer.indent)
	for index, line := range strings.Split(content, "\n") {
		prefix := padding
		if index == 0 && renderer.pendingBullet != "" {
			prefix = renderer.pendingBullet
			renderer.pendingBullet = ""
		}
		renderer.output.WriteString(prefix + line + "\n")
	}
}

func (renderer *markdownRenderer) blankLine() {
	current := renderer.output.String()
	if current == "" || strings.HasSuffix(current, "\n\n") {
		return
	}
	renderer.output.WriteString("\n")
}

func (renderer *markdownRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.theme.TooltipForeground)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	if renderer.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

// highlightCode syntax-highlights code with chroma, falling back to
// faint plain text for unknown languages.
func (renderer *markdownRenderer) highlightCode(code, language string) string {
	code = strings.ReplaceAll(code, "\t", "    ")
	faint := renderer.newStyle().Foreground(renderer.theme.FaintText)
	if language == "" {
		return faint.Render(code)
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err != nil {
		return faint.Render(code)
	}
	return buffer.String()
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading:
		if entering {
			renderer.inline.Reset()
			if node.Kind() == ast.KindHeading {
				renderer.boldCount++
			}
			break
		}
		if node.Kind() == ast.KindHeading {
			renderer.boldCount--
		}
		content := renderer.inline.String()
		renderer.inline.Reset()
		if content != "" {
			renderer.writeBlock(ansi.Wrap(content, renderer.contentWidth(), wrapBreakpoints))
			if len(renderer.listStack) == 0 {
				renderer.blankLine()
			}
		}

	case ast.KindFencedCodeBlock:
		if entering {
			fenced := node.(*ast.FencedCodeBlock)
			code := renderer.blockLines(fenced)
			highlighted := renderer.highlightCode(code, string(fenced.Language(renderer.source)))
			renderer.writeBlock(strings.TrimRight(highlighted, "\n"))
			renderer.blankLine()
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			code := renderer.blockLines(node)
			renderer.writeBlock(renderer.highlightCode(strings.TrimRight(code, "\n"), ""))
			renderer.blankLine()
			return ast.WalkSkipChildren, nil
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			renderer.listStack = append(renderer.listStack, listState{ordered: list.IsOrdered(), counter: list.Start})
		} else {
			renderer.listStack = renderer.listStack[:len(renderer.listStack)-1]
			if len(renderer.listStack) == 0 {
				renderer.blankLine()
			}
		}

	case ast.KindListItem:
		if entering {
			top := &renderer.listStack[len(renderer.listStack)-1]
			bullet := "• "
			if top.ordered {
				bullet = fmt.Sprintf("%d. ", top.counter)
				top.counter++
			}
			width := ansi.StringWidth(bullet)
			renderer.pendingBullet = strings.Repeat(" ", renderer.indent) + bullet
			renderer.bulletWidths = append(renderer.bulletWidths, width)
			renderer.indent += width
		} else {
			last := len(renderer.bulletWidths) - 1
			renderer.indent -= renderer.bulletWidths[last]
			renderer.bulletWidths = renderer.bulletWidths[:last]
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			renderer.inline.WriteString(renderer.styledText(string(textNode.Segment.Value(renderer.source))))
			if textNode.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		delta := -1
		if entering {
			delta = 1
		}
		if node.(*ast.Emphasis).Level >= 2 {
			renderer.boldCount += delta
		} else {
			renderer.italicCount += delta
		}

	case extast.KindStrikethrough:
		if entering {
			renderer.strikethroughCount++
		} else {
			renderer.strikethroughCount--
		}

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(renderer.source))
				}
			}
			renderer.inline.WriteString(renderer.newStyle().Foreground(renderer.theme.FaintText).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if !entering {
			link := node.(*ast.Link)
			if destination := string(link.Destination); destination != "" {
				faint := renderer.newStyle().Foreground(renderer.theme.FaintText)
				renderer.inline.WriteString(" " + faint.Render("("+destination+")"))
			}
		}
	}

	return ast.WalkContinue, nil
}

// blockLines concatenates the raw source lines of a code block.
func (renderer *markdownRenderer) blockLines(node ast.Node) string {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}
	return code.String()
}
