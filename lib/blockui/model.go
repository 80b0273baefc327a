// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/blockbench/lib/block"
	"github.com/bureau-foundation/blockbench/lib/drag"
	"github.com/bureau-foundation/blockbench/lib/geom"
	"github.com/bureau-foundation/blockbench/lib/tui"
	"github.com/bureau-foundation/blockbench/lib/workspace"
)

// DefaultPlaceholder is shown in the workspace while it has no blocks.
const DefaultPlaceholder = "Drag blocks here"

// Options configures a [Model]. The zero value gives the default
// theme, key map, palette width, and placeholder with the drag preview
// enabled.
type Options struct {
	// Theme overrides DefaultTheme.
	Theme *Theme

	// KeyMap overrides DefaultKeyMap.
	KeyMap *KeyMap

	// PaletteWidth is the palette pane width in cells. Zero means
	// DefaultPaletteWidth; other values are clamped to
	// [MinPaletteWidth, MaxPaletteWidth].
	PaletteWidth int

	// Placeholder is the empty-workspace text. Empty means
	// DefaultPlaceholder.
	Placeholder string

	// NoPreview disables the floating copy that follows the pointer.
	NoPreview bool

	// Hooks observes drops and deletes in addition to the model's own
	// status bar bookkeeping.
	Hooks drag.Hooks

	// Logger receives controller debug records.
	Logger *slog.Logger
}

type noticeLevel int

const (
	noticeActivity noticeLevel = iota
	noticeWarn
	noticeError
)

// notice is a transient status bar message.
type notice struct {
	text  string
	level noticeLevel
}

// activityLog collects the status line for the most recent transition.
// The hooks write it synchronously during a controller call and the
// model consumes it right after, so Model copies can share one log.
type activityLog struct {
	pending string
}

func (log *activityLog) take() string {
	text := log.pending
	log.pending = ""
	return text
}

// activityHooks records transitions for the status bar and forwards
// them to the caller's hooks.
type activityHooks struct {
	log  *activityLog
	next drag.Hooks
}

func (hooks activityHooks) OnDragStart(session drag.Session) {
	hooks.next.OnDragStart(session)
}

func (hooks activityHooks) OnDrop(item block.Item, index int) {
	hooks.log.pending = fmt.Sprintf("placed %s at position %d", item.Label, index+1)
	hooks.next.OnDrop(item, index)
}

func (hooks activityHooks) OnDelete(item block.Item, index int) {
	hooks.log.pending = fmt.Sprintf("removed %s from position %d", item.Label, index+1)
	hooks.next.OnDelete(item, index)
}

// Model is the bubbletea model for the block builder: a palette of
// templates on the left and the workspace on the right, driven entirely
// by the mouse.
type Model struct {
	controller *drag.Controller
	layout     *layout
	activity   *activityLog

	theme        Theme
	keys         KeyMap
	paletteWidth int
	placeholder  string

	width  int
	height int
	ready  bool

	// tooltip is the hover tooltip over a palette template, nil when
	// nothing is hovered.
	tooltip *tooltipState

	notice         *notice
	noticeSequence int
}

// NewModel creates a model over the given palette with an empty
// workspace.
func NewModel(palette []block.Template, options Options) Model {
	theme := DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}
	keys := DefaultKeyMap
	if options.KeyMap != nil {
		keys = *options.KeyMap
	}
	placeholder := options.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	next := options.Hooks
	if next == nil {
		next = drag.NopHooks{}
	}

	surface := &layout{}
	activity := &activityLog{}
	controller := drag.NewController(drag.Config{
		Palette:   palette,
		Workspace: workspace.New(),
		Surface:   surface,
		Hooks:     activityHooks{log: activity, next: next},
		Preview:   !options.NoPreview,
		Logger:    options.Logger,
	})

	return Model{
		controller:   controller,
		layout:       surface,
		activity:     activity,
		theme:        theme,
		keys:         keys,
		paletteWidth: clampPaletteWidth(options.PaletteWidth),
		placeholder:  placeholder,
	}
}

func clampPaletteWidth(width int) int {
	switch {
	case width == 0:
		return DefaultPaletteWidth
	case width < MinPaletteWidth:
		return MinPaletteWidth
	case width > MaxPaletteWidth:
		return MaxPaletteWidth
	default:
		return width
	}
}

// Controller returns the drag controller the model drives.
func (model Model) Controller() *drag.Controller {
	return model.controller
}

// Workspace returns the ordered sequence of placed blocks.
func (model Model) Workspace() *workspace.Workspace {
	return model.controller.Workspace()
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		model.tooltip = nil
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}

	case tea.MouseMsg:
		if cmd := model.handleMouse(message); cmd != nil {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.tooltip = nil
		model.relayout()

	case logRecordMsg:
		level := noticeActivity
		switch {
		case message.level >= slog.LevelError:
			level = noticeError
		case message.level >= slog.LevelWarn:
			level = noticeWarn
		}
		return model, model.showNotice(message.summary, level)

	case noticeFadeMsg:
		if message.sequence == model.noticeSequence {
			model.notice = nil
		}
	}
	return model, nil
}

// relayout recomputes the hit-test geometry from the current window
// size, palette, and workspace sequence.
func (model *Model) relayout() {
	var items []block.Item
	if target := model.controller.Workspace(); target != nil {
		items = target.Items()
	}
	paletteWidth := model.paletteWidth
	if paletteWidth > model.width-1 {
		paletteWidth = model.width - 1
	}
	if paletteWidth < 0 {
		paletteWidth = 0
	}
	model.layout.compute(model.width, model.height, paletteWidth, model.controller.Palette(), items)
}

// showNotice replaces the status bar with text until the fade tick
// for this notice arrives.
func (model *Model) showNotice(text string, level noticeLevel) tea.Cmd {
	model.noticeSequence++
	model.notice = &notice{text: text, level: level}
	sequence := model.noticeSequence
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

// handleMouse translates terminal mouse events into controller pointer
// events. Wheel and right-button events are not part of the drag
// protocol and are dropped.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if !model.ready {
		return nil
	}
	point := geom.CellPoint(message.X, message.Y)

	var outcome drag.Outcome
	switch message.Action {
	case tea.MouseActionPress:
		if message.Button != tea.MouseButtonLeft {
			return nil
		}
		model.tooltip = nil
		outcome = model.controller.PointerDown(point)

	case tea.MouseActionMotion:
		if model.controller.State() == drag.StateDragging {
			model.controller.PointerMove(point)
			return nil
		}
		if message.Button == tea.MouseButtonNone {
			model.updateHoverTooltip(message.X, message.Y)
		}
		return nil

	case tea.MouseActionRelease:
		// Terminals do not always report which button was released, so
		// any release ends the drag.
		outcome = model.controller.PointerUp(point)
	}

	switch outcome {
	case drag.OutcomeDropped, drag.OutcomeDeleted:
		model.relayout()
		if text := model.activity.take(); text != "" {
			return model.showNotice(text, noticeActivity)
		}
	}
	return nil
}

// updateHoverTooltip shows the description of the palette template
// under the pointer, or hides the tooltip when there is none.
func (model *Model) updateHoverTooltip(x, y int) {
	templateID, ok := model.layout.templateAt(x, y)
	if !ok {
		model.tooltip = nil
		return
	}
	if model.tooltip != nil && model.tooltip.templateID == templateID {
		return
	}
	bounds, _ := model.layout.TemplateBounds(templateID)
	model.tooltip = &tooltipState{
		templateID: templateID,
		anchorX:    int(bounds.X + bounds.Width),
		anchorY:    int(bounds.Y),
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	bodyHeight := model.height - headerLines - statusLines
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	paletteWidth := model.layout.paletteWidth
	workspaceWidth := int(model.layout.workspace.Width)

	paletteLines := model.renderPalettePane(paletteWidth, bodyHeight)
	workspaceLines := model.renderWorkspacePane(workspaceWidth, bodyHeight)
	divider := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render("│")

	sections := make([]string, 0, model.height)
	sections = append(sections, model.renderHeader())
	for row := 0; row < bodyHeight; row++ {
		sections = append(sections, paletteLines[row]+divider+workspaceLines[row])
	}
	sections = append(sections, model.renderStatusBar())
	output := strings.Join(sections, "\n")

	// Delete affordances sit on the top border of each placed block.
	if target := model.controller.Workspace(); target != nil {
		affordance := renderDeleteAffordance(block.DefaultDeleteAffordance(), model.theme)
		for _, slot := range model.layout.items {
			top := int(slot.deleteRect.Y)
			if top >= headerLines+bodyHeight {
				break
			}
			output = tui.SpliceOverlay(output, []string{affordance}, int(slot.deleteRect.X), top)
		}
	}

	if session, ok := model.controller.Session(); ok && session.Preview != nil {
		width := paletteWidth - 2
		if bounds, found := model.layout.TemplateBounds(session.Template.ID); found {
			width = int(bounds.Width)
		}
		preview := strings.Split(renderTemplate(*session.Template, width, model.theme), "\n")
		output = tui.SpliceOverlay(output, preview,
			int(math.Round(session.Preview.Position.X)),
			int(math.Round(session.Preview.Position.Y)))
	}

	if model.tooltip != nil {
		if template, ok := block.FindTemplate(model.controller.Palette(), model.tooltip.templateID); ok {
			lines := renderTooltip(template, model.theme, tooltipMaxWidth)
			anchorX, anchorY := tui.ClampAnchor(model.tooltip.anchorX, model.tooltip.anchorY,
				tooltipMaxWidth, len(lines), model.width, model.height)
			output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
		}
	}

	return output
}
