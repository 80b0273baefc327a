// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package drag implements the press/move/release state machine that
// turns pointer events into workspace mutations.
//
// A [Controller] has two states:
//
//	Idle --press on template--> Dragging
//	Dragging --move--> Dragging (preview follows the pointer)
//	Dragging --release--> Idle (insert if inside the workspace)
//
// A press on a delete affordance while Idle removes that item without
// leaving Idle. A press while Dragging is ignored. A release while
// Idle is a no-op.
//
// The controller never touches the screen. A [Surface] answers where
// things are (hit tests and bounding boxes); [Hooks] hear about what
// changed. The bubbletea viewer in blockui is one Surface, and tests
// use a static one, so the index computation and sequence mutation are
// exercised without a terminal.
//
// The insertion index is computed once per drop by
// [workspace.InsertionIndex], not on every motion event.
package drag
