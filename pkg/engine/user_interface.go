// Package engine drives a widget tree: it reconciles the tree state against
// freshly built widgets, lays them out, dispatches batches of events (to the
// overlay first, then the base tree), draws and runs operations.
//
// A UserInterface lives for one application update. The usual loop is:
//
//	ui := engine.Build(view(), size, cache, r)
//	state, statuses, messages := ui.Update(events, cursor, r, clipboard)
//	ui.Draw(r, theme, style, cursor)
//	cache = ui.IntoCache()
//	// apply messages, rebuild view and repeat
package engine

import (
	"time"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Cache carries the state tree from one UserInterface to the next.
// The zero value is an empty cache.
type Cache struct {
	tree *state.Tree
}

// NewCache returns an empty cache.
func NewCache() Cache {
	return Cache{tree: state.Empty()}
}

// State summarizes an Update.
type State struct {
	// Outdated reports that a widget invalidated the widget tree. The
	// application must rebuild its widgets before drawing.
	Outdated bool
	// Interaction is the pointer appearance requested under the cursor.
	// It is only meaningful when Outdated is false.
	Interaction event.Interaction
	// Redraw is the earliest redraw requested during the update.
	Redraw core.RedrawRequest
}

type overlayState struct {
	layout      layout.Node
	interaction event.Interaction
	hovered     bool
}

// UserInterface is a built widget tree ready to receive events.
type UserInterface[M any] struct {
	root    core.Element[M]
	base    layout.Node
	tree    *state.Tree
	overlay *overlayState
	bounds  geometry.Size

	trace      *TraceBuffer
	layoutTime time.Duration
	relayouts  int
}

// Build reconciles the cached state tree with root and lays root out in a
// viewport of size bounds.
func Build[M any](root core.Element[M], bounds geometry.Size, cache Cache, r renderer.Renderer) *UserInterface[M] {
	tree := cache.tree
	if tree == nil {
		tree = state.Empty()
	}
	tree.Diff(root)

	ui := &UserInterface[M]{
		root:   root,
		tree:   tree,
		bounds: bounds,
	}
	ui.layoutBase(r)
	ui.relayouts = 0
	return ui
}

// SetTrace records a sample into buf on every Update. Nil disables tracing.
func (ui *UserInterface[M]) SetTrace(buf *TraceBuffer) {
	ui.trace = buf
}

// Bounds returns the viewport size.
func (ui *UserInterface[M]) Bounds() geometry.Size {
	return ui.bounds
}

// Layout returns the layout of the base tree.
func (ui *UserInterface[M]) Layout() layout.Layout {
	return layout.New(&ui.base)
}

// Tree returns the state tree of the root widget.
func (ui *UserInterface[M]) Tree() *state.Tree {
	return ui.tree
}

func (ui *UserInterface[M]) layoutBase(r renderer.Renderer) {
	start := time.Now()
	ui.base = ui.root.Layout(ui.tree, r, layout.NewLimits(geometry.Zero, ui.bounds))
	ui.layoutTime += time.Since(start)
	ui.relayouts++
}

func (ui *UserInterface[M]) rootOverlay(r renderer.Renderer) *nested[M] {
	return newNested(ui.root.Overlay(ui.tree, layout.New(&ui.base), r, geometry.Vector{}))
}

// Update dispatches events in order. Each event goes to the overlay first;
// unless the overlay captures it, the base tree sees it next. It returns the
// update state, one status per event and the published messages.
//
// A widget invalidating the layout triggers a relayout before the next
// event is dispatched. An event captured by the base tree drops the cached
// overlay layout.
func (ui *UserInterface[M]) Update(events []event.Event, cursor event.Cursor, r renderer.Renderer,
	clipboard core.Clipboard) (State, []event.Status, []M) {
	start := time.Now()
	ui.layoutTime = 0
	ui.relayouts = 0
	if clipboard == nil {
		clipboard = core.NullClipboard{}
	}

	var messages []M
	outdated := false
	redraw := core.RedrawWait()
	viewport := geometry.WithSize(ui.bounds)

	baseCursor := cursor
	overlayStatuses := make([]event.Status, len(events))
	overlayInteraction := event.InteractionNone
	hadOverlay := false

	if overlay := ui.rootOverlay(r); overlay != nil {
		hadOverlay = true
		overlayLayout := overlay.layout(r, ui.bounds)

		for i, ev := range events {
			shell := core.NewShell[M]()
			overlay.onEvent(ev, layout.New(&overlayLayout), cursor, r, clipboard, shell)

			overlayStatuses[i] = shell.EventStatus()
			redraw = redraw.Min(shell.RedrawRequest())
			messages = append(messages, shell.Messages()...)
			if shell.AreWidgetsInvalid() {
				outdated = true
			}

			if shell.IsLayoutInvalid() {
				ui.layoutBase(r)
				overlay = ui.rootOverlay(r)
				if overlay == nil {
					break
				}
				shell.RevalidateLayout(func() {
					overlayLayout = overlay.layout(r, ui.bounds)
				})
			}
		}

		if overlay != nil {
			st := &overlayState{layout: overlayLayout}
			if p, ok := cursor.Position(); ok {
				l := layout.New(&st.layout)
				st.hovered = overlay.isOver(l, r, p)
				st.interaction = overlay.mouseInteraction(l, event.Available(p), viewport, r)
			}
			if st.hovered || st.interaction != event.InteractionNone {
				baseCursor = event.Unavailable()
			}
			overlayInteraction = st.interaction
			ui.overlay = st
		} else {
			ui.overlay = nil
		}
	} else {
		ui.overlay = nil
	}
	overlayDone := time.Now()

	statuses := make([]event.Status, len(events))
	captured := 0
	for i, ev := range events {
		if overlayStatuses[i] == event.Captured {
			statuses[i] = event.Captured
			captured++
			continue
		}

		shell := core.NewShell[M]()
		status := ui.root.OnEvent(ui.tree, ev, layout.New(&ui.base), baseCursor, r, clipboard, shell, viewport)
		if status == event.Captured {
			shell.CaptureEvent()
		}
		if shell.IsEventCaptured() {
			ui.overlay = nil
		}

		redraw = redraw.Min(shell.RedrawRequest())
		messages = append(messages, shell.Messages()...)

		shell.RevalidateLayout(func() {
			ui.layoutBase(r)
			if overlay := ui.rootOverlay(r); overlay != nil {
				st := &overlayState{layout: overlay.layout(r, ui.bounds)}
				st.interaction = overlay.mouseInteraction(layout.New(&st.layout), cursor, viewport, r)
				ui.overlay = st
			}
		})

		if shell.AreWidgetsInvalid() {
			outdated = true
		}

		statuses[i] = shell.EventStatus().Merge(overlayStatuses[i])
		if statuses[i] == event.Captured {
			captured++
		}
	}

	interaction := overlayInteraction
	if interaction == event.InteractionNone {
		interaction = ui.root.MouseInteraction(ui.tree, layout.New(&ui.base), baseCursor, viewport, r)
	}

	if ui.trace != nil {
		elapsed := time.Since(start)
		ui.trace.Add(UpdateSample{
			Timestamp: start.UnixMilli(),
			UpdateMs:  durationToMillis(elapsed),
			Phases: PhaseTimings{
				OverlayMs:  durationToMillis(overlayDone.Sub(start)),
				DispatchMs: durationToMillis(time.Since(overlayDone)),
				LayoutMs:   durationToMillis(ui.layoutTime),
			},
			Counts: UpdateCounts{
				Events:    len(events),
				Captured:  captured,
				Messages:  len(messages),
				Relayouts: ui.relayouts,
				TreeNodes: countTree(ui.tree),
			},
			Outdated: outdated,
			Overlay:  hadOverlay,
		}, elapsed)
	}

	if outdated {
		return State{Outdated: true}, statuses, messages
	}
	return State{Interaction: interaction, Redraw: redraw}, statuses, messages
}

// Draw clears r and draws the base tree, then the overlay on top of it.
// Widgets below a hovered or interactive overlay see an unavailable cursor.
func (ui *UserInterface[M]) Draw(r renderer.Renderer, theme any, style renderer.Style, cursor event.Cursor) {
	r.Clear()
	viewport := geometry.WithSize(ui.bounds)

	overlay := ui.rootOverlay(r)
	if overlay == nil {
		ui.overlay = nil
	} else if ui.overlay == nil {
		st := &overlayState{layout: overlay.layout(r, ui.bounds)}
		if p, ok := cursor.Position(); ok {
			l := layout.New(&st.layout)
			st.hovered = overlay.isOver(l, r, p)
			st.interaction = overlay.mouseInteraction(l, cursor, viewport, r)
		}
		ui.overlay = st
	}

	baseCursor := cursor
	if ui.overlay != nil && (ui.overlay.hovered || ui.overlay.interaction != event.InteractionNone) {
		baseCursor = event.Unavailable()
	}

	ui.root.Draw(ui.tree, r, theme, style, layout.New(&ui.base), baseCursor, viewport)

	if overlay != nil {
		overlay.draw(r, theme, style, layout.New(&ui.overlay.layout), cursor)
	}
}

// Operate walks the base tree and then the overlay with op, once.
func (ui *UserInterface[M]) Operate(r renderer.Renderer, op operation.Visitor) {
	ui.root.Operate(ui.tree, layout.New(&ui.base), r, op)

	overlay := ui.rootOverlay(r)
	if overlay == nil {
		return
	}
	if ui.overlay == nil {
		ui.overlay = &overlayState{layout: overlay.layout(r, ui.bounds)}
	}
	overlay.operate(layout.New(&ui.overlay.layout), r, op)
}

// RunOperation runs op over ui until it stops chaining and returns its
// result.
func RunOperation[M, T any](ui *UserInterface[M], r renderer.Renderer, op operation.Operation[T]) (T, bool) {
	return operation.Run(op, func(v operation.Visitor) {
		ui.Operate(r, v)
	})
}

// Relayout rebuilds the interface for a new viewport size, keeping the
// widget state.
func (ui *UserInterface[M]) Relayout(bounds geometry.Size, r renderer.Renderer) *UserInterface[M] {
	next := Build(ui.root, bounds, ui.IntoCache(), r)
	next.trace = ui.trace
	return next
}

// IntoCache returns the state tree for the next Build.
func (ui *UserInterface[M]) IntoCache() Cache {
	return Cache{tree: ui.tree}
}
