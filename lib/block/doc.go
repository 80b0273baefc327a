// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package block defines the values that move through a drag: palette
// [Template]s and the workspace [Item]s materialized from them.
//
// An Item is a snapshot. [Snapshot] copies the template's label and
// its enumerated [Style] field by field, forces the stacked-list
// [Layout], and attaches a [DeleteAffordance]. Nothing links an item
// back to its template afterward, so editing or replacing a palette
// never changes blocks already placed.
//
// This package depends on no other Blockbench packages.
package block
