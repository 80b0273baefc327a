// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package drag

import "github.com/bureau-foundation/blockbench/lib/block"

// Hooks observes controller transitions. Hooks run synchronously
// inside the event handler that caused them, after the workspace has
// been mutated.
type Hooks interface {
	// OnDragStart is called on the Idle to Dragging transition.
	OnDragStart(session Session)

	// OnDrop is called after a new item has been inserted at index.
	OnDrop(item block.Item, index int)

	// OnDelete is called after item has been removed from index.
	OnDelete(item block.Item, index int)
}

// NopHooks ignores every transition.
type NopHooks struct{}

func (NopHooks) OnDragStart(Session)      {}
func (NopHooks) OnDrop(block.Item, int)   {}
func (NopHooks) OnDelete(block.Item, int) {}

// HookFuncs adapts plain functions to [Hooks]. Nil fields are skipped.
type HookFuncs struct {
	DragStart func(session Session)
	Drop      func(item block.Item, index int)
	Delete    func(item block.Item, index int)
}

func (hooks HookFuncs) OnDragStart(session Session) {
	if hooks.DragStart != nil {
		hooks.DragStart(session)
	}
}

func (hooks HookFuncs) OnDrop(item block.Item, index int) {
	if hooks.Drop != nil {
		hooks.Drop(item, index)
	}
}

func (hooks HookFuncs) OnDelete(item block.Item, index int) {
	if hooks.Delete != nil {
		hooks.Delete(item, index)
	}
}
