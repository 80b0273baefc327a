// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package workspace holds the ordered sequence of placed blocks and the
// empty-state placeholder that accompanies it.
//
// The placeholder is visible exactly when the sequence is empty. Every
// mutating method re-establishes that before returning.
package workspace

import (
	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/geom"
)

// Workspace is the drop target. Not safe for concurrent use: it is
// mutated only from the UI event loop.
type Workspace struct {
	items              []block.Item
	placeholderVisible bool
	lastID             block.ItemID
}

// New returns an empty workspace with the placeholder showing.
func New() *Workspace {
	return &Workspace{placeholderVisible: true}
}

// Len returns the number of placed items.
func (workspace *Workspace) Len() int {
	return len(workspace.items)
}

// Items returns the placed items in order. The slice is a copy.
func (workspace *Workspace) Items() []block.Item {
	items := make([]block.Item, len(workspace.items))
	copy(items, workspace.items)
	return items
}

// PlaceholderVisible reports whether the empty-state placeholder shows.
func (workspace *Workspace) PlaceholderVisible() bool {
	return workspace.placeholderVisible
}

// Index returns the position of the item with the given ID, or -1.
func (workspace *Workspace) Index(id block.ItemID) int {
	for index, item := range workspace.items {
		if item.ID == id {
			return index
		}
	}
	return -1
}

// Materialize snapshots template into a new item and inserts it at
// index. An index at or past the end appends; a negative index
// inserts at the front. Returns the new item and the position it
// landed at.
func (workspace *Workspace) Materialize(template block.Template, index int) (block.Item, int) {
	workspace.lastID++
	item := block.Snapshot(template, workspace.lastID)

	switch {
	case len(workspace.items) == 0 || index >= len(workspace.items):
		index = len(workspace.items)
		workspace.items = append(workspace.items, item)
	default:
		if index < 0 {
			index = 0
		}
		workspace.items = append(workspace.items, block.Item{})
		copy(workspace.items[index+1:], workspace.items[index:])
		workspace.items[index] = item
	}

	workspace.syncPlaceholder()
	return item, index
}

// Remove deletes exactly the item with the given ID and keeps the
// rest in their relative order. Returns the removed item and its former
// position; ok is false if no item has that ID.
func (workspace *Workspace) Remove(id block.ItemID) (item block.Item, index int, ok bool) {
	index = workspace.Index(id)
	if index < 0 {
		return block.Item{}, -1, false
	}
	item = workspace.items[index]
	workspace.items = append(workspace.items[:index], workspace.items[index+1:]...)
	workspace.syncPlaceholder()
	return item, index, true
}

func (workspace *Workspace) syncPlaceholder() {
	workspace.placeholderVisible = len(workspace.items) == 0
}

// InsertionIndex returns where a block released at height y belongs
// among items laid out with the given bounding boxes (in sequence
// order). It is the index of the first item whose vertical midpoint is
// strictly below y on screen (midpoint > y), or len(bounds) when the
// release is at or under every midpoint.
func InsertionIndex(bounds []geom.Rect, y float64) int {
	for index, rect := range bounds {
		if y < rect.MidY() {
			return index
		}
	}
	return len(bounds)
}
