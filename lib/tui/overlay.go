// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay.
//
// The anchor may be negative or the overlay may extend past the right
// edge of a line (a drag preview near the window border); the parts
// outside the view are clipped.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		lineAnchor := anchorX
		if lineAnchor < 0 {
			overlayLine = ansi.TruncateLeft(overlayLine, -lineAnchor, "")
			lineAnchor = 0
		}
		overlayWidth := ansi.StringWidth(overlayLine)
		if overlayWidth == 0 {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		// Build: prefix + reset + overlay + reset + suffix.
		var result strings.Builder

		// Prefix: everything before the overlay anchor, padded when the
		// line is shorter than the anchor.
		if lineAnchor > 0 {
			prefix := ansi.Truncate(viewLine, lineAnchor, "")
			result.WriteString(prefix)
			if gap := lineAnchor - ansi.StringWidth(prefix); gap > 0 {
				result.WriteString(strings.Repeat(" ", gap))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		// Suffix: everything after the overlay region.
		suffixStart := lineAnchor + overlayWidth
		if suffixStart < viewLineWidth {
			suffix := ansi.TruncateLeft(viewLine, suffixStart, "")
			result.WriteString(suffix)
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadOverlayLine takes styled content for the inner area and pads it
// to the full width with background-colored spaces. Returns
// " content  " with background applied to the padding.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	rightPad := innerWidth - contentWidth
	if rightPad < 0 {
		rightPad = 0
	}
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// ClampAnchor moves an overlay of the given size so it fits inside a
// screen of screenWidth x screenHeight, preferring the requested
// position. Overlays larger than the screen are pinned to 0.
func ClampAnchor(anchorX, anchorY, width, height, screenWidth, screenHeight int) (int, int) {
	if anchorX+width > screenWidth {
		anchorX = screenWidth - width
	}
	if anchorY+height > screenHeight {
		anchorY = screenHeight - height
	}
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return anchorX, anchorY
}
