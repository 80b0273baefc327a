// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package drag

import (
	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/geom"
)

// TargetKind classifies what lies under a pointer position.
type TargetKind int

const (
	// TargetNone is anything the controller does not care about:
	// chrome, empty palette space, outside the window.
	TargetNone TargetKind = iota
	// TargetTemplate is a palette template (or any part of one).
	TargetTemplate
	// TargetWorkspace is the workspace background, including the
	// placeholder.
	TargetWorkspace
	// TargetItem is the body of a placed item.
	TargetItem
	// TargetDeleteAffordance is the delete control on a placed item.
	TargetDeleteAffordance
)

func (kind TargetKind) String() string {
	switch kind {
	case TargetNone:
		return "none"
	case TargetTemplate:
		return "template"
	case TargetWorkspace:
		return "workspace"
	case TargetItem:
		return "item"
	case TargetDeleteAffordance:
		return "delete"
	default:
		return "unknown"
	}
}

// Target is the result of a hit test.
type Target struct {
	Kind TargetKind

	// TemplateID is set for TargetTemplate.
	TemplateID string

	// ItemID is set for TargetItem and TargetDeleteAffordance.
	ItemID block.ItemID
}

// InWorkspace reports whether the target is the workspace region or
// something contained by it.
func (target Target) InWorkspace() bool {
	switch target.Kind {
	case TargetWorkspace, TargetItem, TargetDeleteAffordance:
		return true
	}
	return false
}

// Surface is the rendering collaborator the controller queries. It
// knows where things are on screen; the controller decides what
// happens.
type Surface interface {
	// HitTest returns the innermost target under point.
	HitTest(point geom.Point) Target

	// ItemBounds returns the bounding box of every placed item, in
	// workspace order.
	ItemBounds() []geom.Rect

	// TemplateBounds returns the bounding box of a palette template.
	TemplateBounds(templateID string) (geom.Rect, bool)
}
