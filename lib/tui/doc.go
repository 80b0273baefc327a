// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the shared terminal chrome for Blockbench's
// viewer: the color [Theme] and ANSI-aware overlay splicing used for
// the drag preview and hover tooltips.
package tui
