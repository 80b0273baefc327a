// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package block

import (
	"fmt"
	"strconv"
)

// Kind is the category of a block. The set is fixed: the palette only
// ever offers these six.
type Kind string

const (
	KindVariables  Kind = "variables"
	KindArithmetic Kind = "arithmetic"
	KindConditions Kind = "conditions"
	KindArray      Kind = "array"
	KindCycle      Kind = "cycle"
	KindPrint      Kind = "print"
)

var allKinds = []Kind{
	KindVariables,
	KindArithmetic,
	KindConditions,
	KindArray,
	KindCycle,
	KindPrint,
}

// Kinds returns every block kind in palette order.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	for _, kind := range allKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown block kind %q", name)
}

// Template is a palette entry. Templates are never moved, mutated, or
// destroyed by a drag; dropping one produces an independent [Item].
type Template struct {
	// ID identifies the template within its palette.
	ID string

	Kind Kind

	// Label is the display content copied onto placed items.
	Label string

	// Description is markdown shown when hovering the template in
	// the palette. It is not copied onto items.
	Description string

	Style Style
}

// ItemID identifies a placed item within one workspace. IDs are never
// reused, so a stale ID cannot address a newer item.
type ItemID uint64

func (id ItemID) String() string {
	return "item-" + strconv.FormatUint(uint64(id), 10)
}

// Item is a block materialized inside the workspace. Label and Style
// are snapshots of the originating template at creation time.
type Item struct {
	ID ItemID

	// TemplateID records which palette entry the item came from.
	// It is informational only: nothing is read back through it.
	TemplateID string

	Kind   Kind
	Label  string
	Style  Style
	Layout Layout
	Delete DeleteAffordance
}

// Snapshot materializes template into a new item. Every field is
// copied by value, so later changes to the template (or to the palette
// slice holding it) never reach the item.
func Snapshot(template Template, id ItemID) Item {
	return Item{
		ID:         id,
		TemplateID: template.ID,
		Kind:       template.Kind,
		Label:      template.Label,
		Style:      template.Style.Clone(),
		Layout:     StackedLayout(),
		Delete:     DefaultDeleteAffordance(),
	}
}
