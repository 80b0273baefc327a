// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/drag"
	"github.com/bureau-foundation/blockbench/lib/geom"
)

// Screen geometry. All sizes are in terminal cells.
const (
	// headerLines is the title bar at Y=0.
	headerLines = 1
	// paneTitleLines is the "Blocks" / "Workspace" row under the
	// header.
	paneTitleLines = 1
	// statusLines is the help/notice bar at the bottom.
	statusLines = 1

	// blockHeight is a bordered block: top border, label, bottom
	// border.
	blockHeight = 3
	// blockGap is the blank row between stacked blocks.
	blockGap = 1

	// workspacePadding is the horizontal inset of placed blocks
	// inside the workspace pane, on each side.
	workspacePadding = 2

	// deleteWidth is the " × " affordance on a block's top border.
	deleteWidth = 3

	// DefaultPaletteWidth is the palette pane width, excluding the
	// divider.
	DefaultPaletteWidth = 22
	// MinPaletteWidth and MaxPaletteWidth bound the configurable
	// palette width.
	MinPaletteWidth = 12
	MaxPaletteWidth = 60
)

type templateSlot struct {
	id   string
	rect geom.Rect
}

type itemSlot struct {
	id         block.ItemID
	rect       geom.Rect
	deleteRect geom.Rect
}

// layout records where everything is drawn. It is the [drag.Surface]
// the controller queries, so it must be recomputed after every change
// to the window size or the workspace sequence.
type layout struct {
	width        int
	height       int
	paletteWidth int

	palette   geom.Rect
	workspace geom.Rect

	templates []templateSlot
	items     []itemSlot
}

var _ drag.Surface = (*layout)(nil)

// contentTop is the first row of blocks in either pane.
func contentTop() int {
	return headerLines + paneTitleLines
}

// blockTop returns the Y of the index-th stacked block.
func blockTop(index int) int {
	return contentTop() + index*(blockHeight+blockGap)
}

// compute recomputes every rectangle for the given window size and
// content. Rectangles of blocks that fall below the visible area are
// still recorded; hit tests clip them against the pane.
func (layout *layout) compute(width, height, paletteWidth int, palette []block.Template, items []block.Item) {
	layout.width = width
	layout.height = height
	layout.paletteWidth = paletteWidth

	bodyHeight := height - headerLines - statusLines
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	layout.palette = geom.CellRect(0, headerLines, paletteWidth, bodyHeight)
	workspaceX := paletteWidth + 1
	workspaceWidth := width - workspaceX
	if workspaceWidth < 0 {
		workspaceWidth = 0
	}
	layout.workspace = geom.CellRect(workspaceX, headerLines, workspaceWidth, bodyHeight)

	layout.templates = layout.templates[:0]
	templateWidth := paletteWidth - 2
	for index, template := range palette {
		layout.templates = append(layout.templates, templateSlot{
			id:   template.ID,
			rect: geom.CellRect(1, blockTop(index), templateWidth, blockHeight),
		})
	}

	layout.items = layout.items[:0]
	itemX := workspaceX + workspacePadding
	itemWidth := layout.itemWidth()
	for index, item := range items {
		top := blockTop(index)
		layout.items = append(layout.items, itemSlot{
			id:         item.ID,
			rect:       geom.CellRect(itemX, top, itemWidth, blockHeight),
			deleteRect: geom.CellRect(itemX+itemWidth-deleteWidth-1, top, deleteWidth, 1),
		})
	}
}

// itemWidth is the full border-box width of a placed block: the
// workspace pane minus its padding.
func (layout *layout) itemWidth() int {
	width := int(layout.workspace.Width) - 2*workspacePadding
	if width < deleteWidth+2 {
		width = deleteWidth + 2
	}
	return width
}

// HitTest implements [drag.Surface].
func (layout *layout) HitTest(point geom.Point) drag.Target {
	if layout.palette.Contains(point) {
		for _, slot := range layout.templates {
			if slot.rect.Contains(point) {
				return drag.Target{Kind: drag.TargetTemplate, TemplateID: slot.id}
			}
		}
		return drag.Target{Kind: drag.TargetNone}
	}
	if layout.workspace.Contains(point) {
		for _, slot := range layout.items {
			if slot.deleteRect.Contains(point) {
				return drag.Target{Kind: drag.TargetDeleteAffordance, ItemID: slot.id}
			}
			if slot.rect.Contains(point) {
				return drag.Target{Kind: drag.TargetItem, ItemID: slot.id}
			}
		}
		return drag.Target{Kind: drag.TargetWorkspace}
	}
	return drag.Target{Kind: drag.TargetNone}
}

// ItemBounds implements [drag.Surface].
func (layout *layout) ItemBounds() []geom.Rect {
	bounds := make([]geom.Rect, len(layout.items))
	for index, slot := range layout.items {
		bounds[index] = slot.rect
	}
	return bounds
}

// TemplateBounds implements [drag.Surface].
func (layout *layout) TemplateBounds(templateID string) (geom.Rect, bool) {
	for _, slot := range layout.templates {
		if slot.id == templateID {
			return slot.rect, true
		}
	}
	return geom.Rect{}, false
}

// templateAt returns the palette template under (x, y), if any.
func (layout *layout) templateAt(x, y int) (string, bool) {
	target := layout.HitTest(geom.CellPoint(x, y))
	if target.Kind != drag.TargetTemplate {
		return "", false
	}
	return target.TemplateID, true
}
