package engine

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
)

// nested drives an overlay together with the overlays it opens in turn.
//
// Its layout node holds the overlay node as first child and, when the
// overlay shows a nested overlay, the nested layout as second child. The
// deepest overlay is the topmost: it is drawn last and sees events first.
type nested[M any] struct {
	overlay *core.OverlayElement[M]
}

func newNested[M any](o *core.OverlayElement[M]) *nested[M] {
	if o == nil {
		return nil
	}
	return &nested[M]{overlay: o}
}

func (n *nested[M]) layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return layoutNested(n.overlay, r, bounds)
}

func layoutNested[M any](e *core.OverlayElement[M], r renderer.Renderer, bounds geometry.Size) layout.Node {
	node := e.Layout(r, bounds)
	if inner := e.Overlay(layout.New(&node), r); inner != nil {
		return layout.NodeWithChildren(node.Size(), []layout.Node{node, layoutNested(inner, r, bounds)})
	}
	return layout.NodeWithChildren(node.Size(), []layout.Node{node})
}

// split returns the overlay layout and, if present, the nested layout.
func split(l layout.Layout) (own layout.Layout, inner layout.Layout, ok, hasInner bool) {
	switch l.ChildCount() {
	case 0:
		return layout.Layout{}, layout.Layout{}, false, false
	case 1:
		return l.Child(0), layout.Layout{}, true, false
	default:
		return l.Child(0), l.Child(1), true, true
	}
}

func (n *nested[M]) draw(r renderer.Renderer, theme any, style renderer.Style, l layout.Layout, cursor event.Cursor) {
	drawNested(n.overlay, r, theme, style, l, cursor)
}

func drawNested[M any](e *core.OverlayElement[M], r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor) {
	own, innerLayout, ok, hasInner := split(l)
	if !ok {
		return
	}
	var inner *core.OverlayElement[M]
	if hasInner {
		inner = e.Overlay(own, r)
	}

	overCursor := cursor
	if p, ok := cursor.Position(); ok && inner != nil && isOverNested(inner, innerLayout, r, p) {
		overCursor = event.Unavailable()
	}
	r.WithLayer(own.Bounds(), func() {
		e.Draw(r, theme, style, own, overCursor)
	})

	if inner != nil {
		drawNested(inner, r, theme, style, innerLayout, cursor)
	}
}

func (n *nested[M]) operate(l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	operateNested(n.overlay, l, r, op)
}

func operateNested[M any](e *core.OverlayElement[M], l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	own, innerLayout, ok, hasInner := split(l)
	if !ok {
		return
	}
	e.Operate(own, r, op)
	if !hasInner {
		return
	}
	if inner := e.Overlay(own, r); inner != nil {
		operateNested(inner, innerLayout, r, op)
	}
}

func (n *nested[M]) onEvent(ev event.Event, l layout.Layout, cursor event.Cursor, r renderer.Renderer,
	clipboard core.Clipboard, shell *core.Shell[M]) {
	onEventNested(n.overlay, ev, l, cursor, r, clipboard, shell)
}

// onEventNested dispatches to the deepest overlay first and reports whether
// the cursor is over any overlay of the chain.
func onEventNested[M any](e *core.OverlayElement[M], ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M]) bool {
	own, innerLayout, ok, hasInner := split(l)
	if !ok {
		return false
	}

	innerIsOver := false
	if hasInner {
		if inner := e.Overlay(own, r); inner != nil {
			innerIsOver = onEventNested(inner, ev, innerLayout, cursor, r, clipboard, shell)
		}
	}

	if shell.IsEventCaptured() {
		return innerIsOver
	}

	isOver := innerIsOver
	if p, ok := cursor.Position(); ok && !isOver {
		isOver = e.IsOver(own, r, p)
	}

	ownCursor := cursor
	if innerIsOver {
		ownCursor = event.Unavailable()
	}
	if e.OnEvent(ev, own, ownCursor, r, clipboard, shell) == event.Captured {
		shell.CaptureEvent()
	}
	return isOver
}

func (n *nested[M]) mouseInteraction(l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle,
	r renderer.Renderer) event.Interaction {
	interaction, _ := mouseInteractionNested(n.overlay, l, cursor, viewport, r)
	return interaction
}

func mouseInteractionNested[M any](e *core.OverlayElement[M], l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) (event.Interaction, bool) {
	own, innerLayout, ok, hasInner := split(l)
	if !ok {
		return event.InteractionNone, false
	}
	p, ok := cursor.Position()
	if !ok || !e.IsOver(own, r, p) {
		return event.InteractionNone, false
	}
	if hasInner {
		if inner := e.Overlay(own, r); inner != nil {
			if interaction, ok := mouseInteractionNested(inner, innerLayout, cursor, viewport, r); ok {
				return interaction, true
			}
		}
	}
	return e.MouseInteraction(own, cursor, viewport, r), true
}

func (n *nested[M]) isOver(l layout.Layout, r renderer.Renderer, p geometry.Point) bool {
	return isOverNested(n.overlay, l, r, p)
}

func isOverNested[M any](e *core.OverlayElement[M], l layout.Layout, r renderer.Renderer, p geometry.Point) bool {
	own, innerLayout, ok, hasInner := split(l)
	if !ok {
		return false
	}
	if e.IsOver(own, r, p) {
		return true
	}
	if !hasInner {
		return false
	}
	inner := e.Overlay(own, r)
	return inner != nil && isOverNested(inner, innerLayout, r, p)
}
