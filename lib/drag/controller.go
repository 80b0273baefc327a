// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package drag

import (
	"io"
	"log/slog"

	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/geom"
	"github.com/bureau-foundation/blockbench/lib/workspace"
)

// State is the controller's position in the drag state machine.
type State int

const (
	// StateIdle means no drag is in progress and there is no session.
	StateIdle State = iota
	// StateDragging means a template has been pressed and not yet
	// released.
	StateDragging
)

func (state State) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Outcome reports what a pointer event did.
type Outcome int

const (
	// OutcomeIgnored means the event caused no transition.
	OutcomeIgnored Outcome = iota
	// OutcomeStarted means Idle moved to Dragging.
	OutcomeStarted
	// OutcomeMoved means the preview followed the pointer.
	OutcomeMoved
	// OutcomeDropped means a new item was inserted and the session
	// cleared.
	OutcomeDropped
	// OutcomeCancelled means the release landed outside the
	// workspace and the session was cleared without a mutation.
	OutcomeCancelled
	// OutcomeDeleted means a placed item was removed.
	OutcomeDeleted
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStarted:
		return "started"
	case OutcomeMoved:
		return "moved"
	case OutcomeDropped:
		return "dropped"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Preview is the floating copy of the template that follows the
// pointer during a drag. Purely cosmetic.
type Preview struct {
	// Position is where the preview's top-left corner is drawn:
	// pointer position minus the session offset.
	Position geom.Point
}

// Session is the transient state of one drag.
type Session struct {
	// Template is the palette entry being dragged. The session only
	// refers to it; templates outlive every session.
	Template *block.Template

	// Start is the pointer position at press time.
	Start geom.Point

	// Offset is the pointer position minus the template's top-left
	// corner at press time.
	Offset geom.Point

	// Preview is nil when previews are disabled.
	Preview *Preview
}

// Config configures a [Controller].
type Config struct {
	// Palette is the set of registered templates. Presses on targets
	// whose template ID is not in the palette are ignored. The
	// controller keeps its own copy.
	Palette []block.Template

	// Workspace is the drop target. When nil, drops are cancelled
	// and deletes are ignored.
	Workspace *workspace.Workspace

	// Surface answers hit tests and bounding-box queries. When nil,
	// every pointer event is ignored.
	Surface Surface

	// Hooks observes transitions. Nil means [NopHooks].
	Hooks Hooks

	// Preview enables the floating drag preview.
	Preview bool

	// Logger receives debug records for every transition. Nil
	// discards.
	Logger *slog.Logger
}

// Controller owns the single drag session, the registered templates,
// and the workspace. It translates pointer events into workspace
// mutations.
//
// A Controller is driven from one event loop and is not safe for
// concurrent use. Every method runs to completion without blocking.
type Controller struct {
	palette   []block.Template
	workspace *workspace.Workspace
	surface   Surface
	hooks     Hooks
	preview   bool
	logger    *slog.Logger

	state   State
	session Session
}

// NewController creates an idle controller.
func NewController(config Config) *Controller {
	palette := make([]block.Template, len(config.Palette))
	copy(palette, config.Palette)

	hooks := config.Hooks
	if hooks == nil {
		hooks = NopHooks{}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Controller{
		palette:   palette,
		workspace: config.Workspace,
		surface:   config.Surface,
		hooks:     hooks,
		preview:   config.Preview,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current state.
func (controller *Controller) State() State {
	return controller.state
}

// Session returns a copy of the active session. ok is false when Idle.
func (controller *Controller) Session() (session Session, ok bool) {
	if controller.state != StateDragging {
		return Session{}, false
	}
	session = controller.session
	if session.Preview != nil {
		preview := *session.Preview
		session.Preview = &preview
	}
	return session, true
}

// Palette returns the registered templates. The slice is a copy.
func (controller *Controller) Palette() []block.Template {
	palette := make([]block.Template, len(controller.palette))
	copy(palette, controller.palette)
	return palette
}

// Workspace returns the drop target, which may be nil.
func (controller *Controller) Workspace() *workspace.Workspace {
	return controller.workspace
}

// PointerDown handles a press at point.
//
// From Idle, a press on a registered template starts a drag, and a
// press on a delete affordance removes that item; the press is consumed
// either way. From Dragging, every press is ignored: a second drag never
// preempts or queues behind the first.
func (controller *Controller) PointerDown(point geom.Point) Outcome {
	if controller.surface == nil {
		return controller.record("pointer-down", OutcomeIgnored)
	}
	if controller.state == StateDragging {
		controller.logger.Debug("press ignored while dragging",
			"template", controller.session.Template.ID,
		)
		return controller.record("pointer-down", OutcomeIgnored)
	}

	target := controller.surface.HitTest(point)
	switch target.Kind {
	case TargetTemplate:
		return controller.record("pointer-down", controller.begin(target.TemplateID, point))
	case TargetDeleteAffordance:
		return controller.record("pointer-down", controller.remove(target.ItemID))
	}
	return controller.record("pointer-down", OutcomeIgnored)
}

func (controller *Controller) begin(templateID string, point geom.Point) Outcome {
	template := controller.lookup(templateID)
	if template == nil {
		return OutcomeIgnored
	}

	bounds, ok := controller.surface.TemplateBounds(templateID)
	if !ok {
		// No geometry means the template is not on screen; treat the
		// press point as its corner so the preview starts under the
		// pointer.
		bounds = geom.Rect{X: point.X, Y: point.Y}
	}

	controller.session = Session{
		Template: template,
		Start:    point,
		Offset:   point.Sub(bounds.TopLeft()),
	}
	if controller.preview {
		controller.session.Preview = &Preview{Position: bounds.TopLeft()}
	}
	controller.state = StateDragging

	controller.logger.Debug("drag started",
		"template", template.ID,
		"kind", string(template.Kind),
		"x", point.X,
		"y", point.Y,
	)
	session, _ := controller.Session()
	controller.hooks.OnDragStart(session)
	return OutcomeStarted
}

func (controller *Controller) lookup(templateID string) *block.Template {
	for index := range controller.palette {
		if controller.palette[index].ID == templateID {
			return &controller.palette[index]
		}
	}
	return nil
}

// PointerMove handles pointer motion. While dragging with a preview,
// the preview's top-left follows point minus the offset. The insertion
// index is not computed here; that happens once, on release.
func (controller *Controller) PointerMove(point geom.Point) Outcome {
	if controller.state != StateDragging {
		return OutcomeIgnored
	}
	if controller.session.Preview == nil {
		return OutcomeIgnored
	}
	controller.session.Preview.Position = point.Sub(controller.session.Offset)
	return OutcomeMoved
}

// PointerUp handles a release at point. A release while Idle is a
// no-op. A release while Dragging inserts a new item if point is inside
// the workspace, then clears the session whether or not anything was
// inserted.
func (controller *Controller) PointerUp(point geom.Point) Outcome {
	if controller.state != StateDragging {
		controller.clear()
		return controller.record("pointer-up", OutcomeIgnored)
	}

	// The session ends with this event no matter where it lands.
	template := controller.session.Template
	controller.clear()

	target := controller.surface.HitTest(point)
	if !target.InWorkspace() || controller.workspace == nil {
		controller.logger.Debug("drop outside workspace",
			"template", template.ID,
			"target", target.Kind.String(),
		)
		return controller.record("pointer-up", OutcomeCancelled)
	}

	index := workspace.InsertionIndex(controller.surface.ItemBounds(), point.Y)
	item, index := controller.workspace.Materialize(*template, index)

	controller.logger.Debug("block dropped",
		"template", template.ID,
		"item", item.ID.String(),
		"index", index,
		"count", controller.workspace.Len(),
	)
	controller.hooks.OnDrop(item, index)
	return controller.record("pointer-up", OutcomeDropped)
}

// NativeDragStart reports whether a host-level drag gesture should be
// suppressed. It always should: only the press/move/release protocol
// drives dragging.
func (controller *Controller) NativeDragStart() bool {
	return true
}

// Delete activates the delete affordance of the item with the given
// ID. Unknown IDs and a missing workspace are no-ops.
func (controller *Controller) Delete(id block.ItemID) Outcome {
	return controller.record("delete", controller.remove(id))
}

func (controller *Controller) remove(id block.ItemID) Outcome {
	if controller.workspace == nil {
		return OutcomeIgnored
	}
	item, index, ok := controller.workspace.Remove(id)
	if !ok {
		return OutcomeIgnored
	}
	controller.logger.Debug("block deleted",
		"item", item.ID.String(),
		"index", index,
		"count", controller.workspace.Len(),
		"placeholder", controller.workspace.PlaceholderVisible(),
	)
	controller.hooks.OnDelete(item, index)
	return OutcomeDeleted
}

// clear drops the preview and resets every session field. Safe to call
// in any state.
func (controller *Controller) clear() {
	controller.session = Session{}
	controller.state = StateIdle
}

func (controller *Controller) record(event string, outcome Outcome) Outcome {
	if outcome != OutcomeIgnored {
		controller.logger.Debug("pointer event",
			"event", event,
			"outcome", outcome.String(),
			"state", controller.state.String(),
		)
	}
	return outcome
}
