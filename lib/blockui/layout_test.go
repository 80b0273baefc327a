// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"testing"

	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/drag"
	"github.com/bureau-foundation/blockbench/lib/geom"
)

func testLayout(items []block.Item) *layout {
	result := &layout{}
	result.compute(80, 40, DefaultPaletteWidth, block.DefaultPalette(), items)
	return result
}

func TestLayoutPanes(t *testing.T) {
	result := testLayout(nil)

	if want := geom.CellRect(0, 1, 22, 38); result.palette != want {
		t.Errorf("palette = %+v, want %+v", result.palette, want)
	}
	if want := geom.CellRect(23, 1, 57, 38); result.workspace != want {
		t.Errorf("workspace = %+v, want %+v", result.workspace, want)
	}
	if got := result.itemWidth(); got != 53 {
		t.Errorf("itemWidth = %d, want 53", got)
	}
}

func TestLayoutTemplateSlots(t *testing.T) {
	result := testLayout(nil)
	palette := block.DefaultPalette()

	if len(result.templates) != len(palette) {
		t.Fatalf("got %d template slots, want %d", len(result.templates), len(palette))
	}
	for index, slot := range result.templates {
		if slot.id != palette[index].ID {
			t.Errorf("slot %d id = %q, want %q", index, slot.id, palette[index].ID)
		}
		want := geom.CellRect(1, 2+index*4, 20, 3)
		if slot.rect != want {
			t.Errorf("slot %d rect = %+v, want %+v", index, slot.rect, want)
		}
	}

	bounds, ok := result.TemplateBounds("conditions")
	if !ok || bounds != geom.CellRect(1, 10, 20, 3) {
		t.Errorf("TemplateBounds(conditions) = %+v, %v", bounds, ok)
	}
	if _, ok := result.TemplateBounds("missing"); ok {
		t.Error("TemplateBounds(missing) should report false")
	}
}

func TestLayoutItemBoundsMidpoints(t *testing.T) {
	items := []block.Item{{ID: 1}, {ID: 2}, {ID: 3}}
	bounds := testLayout(items).ItemBounds()

	wantMid := []float64{3.5, 7.5, 11.5}
	if len(bounds) != len(wantMid) {
		t.Fatalf("got %d bounds, want %d", len(bounds), len(wantMid))
	}
	for index, rect := range bounds {
		if rect.MidY() != wantMid[index] {
			t.Errorf("item %d MidY = %v, want %v", index, rect.MidY(), wantMid[index])
		}
		if rect.X != 25 || rect.Width != 53 {
			t.Errorf("item %d spans x=%v width=%v, want x=25 width=53", index, rect.X, rect.Width)
		}
	}
}

func TestLayoutHitTest(t *testing.T) {
	result := testLayout([]block.Item{{ID: 7}, {ID: 9}})

	tests := []struct {
		name  string
		point geom.Point
		want  drag.Target
	}{
		{"header", geom.CellPoint(5, 0), drag.Target{Kind: drag.TargetNone}},
		{"palette title", geom.CellPoint(5, 1), drag.Target{Kind: drag.TargetNone}},
		{"first template", geom.CellPoint(5, 3), drag.Target{Kind: drag.TargetTemplate, TemplateID: "variables"}},
		{"template border", geom.CellPoint(1, 6), drag.Target{Kind: drag.TargetTemplate, TemplateID: "arithmetic"}},
		{"gap between templates", geom.CellPoint(5, 5), drag.Target{Kind: drag.TargetNone}},
		{"divider", geom.CellPoint(22, 10), drag.Target{Kind: drag.TargetNone}},
		{"first item", geom.CellPoint(40, 3), drag.Target{Kind: drag.TargetItem, ItemID: 7}},
		{"second item", geom.CellPoint(40, 8), drag.Target{Kind: drag.TargetItem, ItemID: 9}},
		{"first delete", geom.CellPoint(75, 2), drag.Target{Kind: drag.TargetDeleteAffordance, ItemID: 7}},
		{"second delete", geom.CellPoint(74, 6), drag.Target{Kind: drag.TargetDeleteAffordance, ItemID: 9}},
		{"item corner beside delete", geom.CellPoint(77, 2), drag.Target{Kind: drag.TargetItem, ItemID: 7}},
		{"workspace background", geom.CellPoint(40, 20), drag.Target{Kind: drag.TargetWorkspace}},
		{"workspace padding", geom.CellPoint(23, 3), drag.Target{Kind: drag.TargetWorkspace}},
		{"status bar", geom.CellPoint(40, 39), drag.Target{Kind: drag.TargetNone}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := result.HitTest(test.point); got != test.want {
				t.Errorf("HitTest(%v) = %+v, want %+v", test.point, got, test.want)
			}
		})
	}
}

func TestLayoutTemplateAt(t *testing.T) {
	result := testLayout(nil)

	if id, ok := result.templateAt(5, 23); !ok || id != "print" {
		t.Errorf("templateAt(5, 23) = %q, %v; want print", id, ok)
	}
	if _, ok := result.templateAt(40, 3); ok {
		t.Error("templateAt over the workspace should report false")
	}
}

func TestLayoutRecomputeDropsStaleItems(t *testing.T) {
	result := testLayout([]block.Item{{ID: 1}, {ID: 2}})
	result.compute(80, 40, DefaultPaletteWidth, block.DefaultPalette(), []block.Item{{ID: 2}})

	bounds := result.ItemBounds()
	if len(bounds) != 1 {
		t.Fatalf("got %d bounds after recompute, want 1", len(bounds))
	}
	if got := result.HitTest(geom.CellPoint(40, 3)); got.ItemID != 2 {
		t.Errorf("item at first slot = %v, want 2", got.ItemID)
	}
}
