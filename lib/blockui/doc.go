// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blockui implements the terminal block builder. Built on
// bubbletea (Elm architecture), it draws a palette of block templates
// beside an ordered workspace and drives a [drag.Controller] from
// mouse events.
//
// The screen layout doubles as the controller's [drag.Surface]: every
// template, placed block, and delete affordance has a rectangle in
// cell coordinates, recomputed on resize and after each drop or
// delete. The controller never sees terminal events, only points.
//
// Event flow:
//
//	[terminal mouse]
//	        | tea.MouseMsg
//	    [Model] -- press/motion/release --> [drag.Controller]
//	        |                                     |
//	  [View: panes + overlays]          [workspace.Workspace]
//
// Hovering a palette template shows its markdown description in a
// tooltip. Log records at or above the [TUILogHandler] level replace
// the status bar for a few seconds.
package blockui
