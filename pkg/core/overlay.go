package core

import (
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Overlay is a floating tree shown above the base tree, such as the menu of
// a dropdown. It is laid out against the whole viewport after the base tree
// and sees events before it.
type Overlay[M any] interface {
	// Layout positions the overlay inside a viewport of size bounds.
	Layout(r renderer.Renderer, bounds geometry.Size) layout.Node
	Draw(r renderer.Renderer, theme any, style renderer.Style, l layout.Layout, cursor event.Cursor)
	OnEvent(ev event.Event, l layout.Layout, cursor event.Cursor, r renderer.Renderer,
		clipboard Clipboard, shell *Shell[M]) event.Status
	Operate(l layout.Layout, r renderer.Renderer, op operation.Visitor)
	MouseInteraction(l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle, r renderer.Renderer) event.Interaction
	// IsOver reports whether p hits the overlay. Widgets below an overlay
	// that is hovered see an unavailable cursor.
	IsOver(l layout.Layout, r renderer.Renderer, p geometry.Point) bool
	// Overlay returns a nested overlay, or nil.
	Overlay(l layout.Layout, r renderer.Renderer) *OverlayElement[M]
}

// OverlayBase provides defaults for the optional parts of Overlay.
type OverlayBase[M any] struct{}

// Operate does nothing.
func (OverlayBase[M]) Operate(layout.Layout, renderer.Renderer, operation.Visitor) {}

// MouseInteraction expresses no preference.
func (OverlayBase[M]) MouseInteraction(layout.Layout, event.Cursor, geometry.Rectangle, renderer.Renderer) event.Interaction {
	return event.InteractionNone
}

// IsOver hit-tests the overlay bounds.
func (OverlayBase[M]) IsOver(l layout.Layout, _ renderer.Renderer, p geometry.Point) bool {
	return l.Bounds().Contains(p)
}

// Overlay returns nil.
func (OverlayBase[M]) Overlay(layout.Layout, renderer.Renderer) *OverlayElement[M] {
	return nil
}

// OverlayElement is a type-erased overlay.
type OverlayElement[M any] struct {
	overlay Overlay[M]
}

// NewOverlayElement wraps o.
func NewOverlayElement[M any](o Overlay[M]) *OverlayElement[M] {
	return &OverlayElement[M]{overlay: o}
}

// Unwrap returns the wrapped overlay.
func (e *OverlayElement[M]) Unwrap() Overlay[M] {
	return e.overlay
}

func (e *OverlayElement[M]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return e.overlay.Layout(r, bounds)
}

func (e *OverlayElement[M]) Draw(r renderer.Renderer, theme any, style renderer.Style, l layout.Layout, cursor event.Cursor) {
	e.overlay.Draw(r, theme, style, l, cursor)
}

func (e *OverlayElement[M]) OnEvent(ev event.Event, l layout.Layout, cursor event.Cursor, r renderer.Renderer,
	clipboard Clipboard, shell *Shell[M]) event.Status {
	return e.overlay.OnEvent(ev, l, cursor, r, clipboard, shell)
}

func (e *OverlayElement[M]) Operate(l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	e.overlay.Operate(l, r, op)
}

func (e *OverlayElement[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return e.overlay.MouseInteraction(l, cursor, viewport, r)
}

func (e *OverlayElement[M]) IsOver(l layout.Layout, r renderer.Renderer, p geometry.Point) bool {
	return e.overlay.IsOver(l, r, p)
}

func (e *OverlayElement[M]) Overlay(l layout.Layout, r renderer.Renderer) *OverlayElement[M] {
	return e.overlay.Overlay(l, r)
}

// MapOverlay adapts an overlay producing messages of type A into one
// producing messages of type B.
func MapOverlay[A, B any](o *OverlayElement[A], f func(A) B) *OverlayElement[B] {
	return NewOverlayElement[B](mappedOverlay[A, B]{inner: o, f: f})
}

type mappedOverlay[A, B any] struct {
	inner *OverlayElement[A]
	f     func(A) B
}

func (m mappedOverlay[A, B]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	return m.inner.Layout(r, bounds)
}

func (m mappedOverlay[A, B]) Draw(r renderer.Renderer, theme any, style renderer.Style, l layout.Layout, cursor event.Cursor) {
	m.inner.Draw(r, theme, style, l, cursor)
}

func (m mappedOverlay[A, B]) OnEvent(ev event.Event, l layout.Layout, cursor event.Cursor, r renderer.Renderer,
	clipboard Clipboard, shell *Shell[B]) event.Status {
	local := NewShell[A]()
	status := m.inner.OnEvent(ev, l, cursor, r, clipboard, local)
	MergeShell(shell, local, m.f)
	return status
}

func (m mappedOverlay[A, B]) Operate(l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	m.inner.Operate(l, r, op)
}

func (m mappedOverlay[A, B]) MouseInteraction(l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return m.inner.MouseInteraction(l, cursor, viewport, r)
}

func (m mappedOverlay[A, B]) IsOver(l layout.Layout, r renderer.Renderer, p geometry.Point) bool {
	return m.inner.IsOver(l, r, p)
}

func (m mappedOverlay[A, B]) Overlay(l layout.Layout, r renderer.Renderer) *OverlayElement[B] {
	nested := m.inner.Overlay(l, r)
	if nested == nil {
		return nil
	}
	return MapOverlay(nested, m.f)
}

// ChildrenOverlay collects the overlays of children laid out at l. It
// returns nil when no child shows an overlay, the overlay itself when one
// does, and a Group otherwise.
func ChildrenOverlay[M any](children []Element[M], trees []*state.Tree, l layout.Layout,
	r renderer.Renderer, translation geometry.Vector) *OverlayElement[M] {
	var overlays []*OverlayElement[M]
	for i, child := range children {
		if o := child.Overlay(trees[i], l.Child(i), r, translation); o != nil {
			overlays = append(overlays, o)
		}
	}
	switch len(overlays) {
	case 0:
		return nil
	case 1:
		return overlays[0]
	default:
		return NewGroup(overlays...).Element()
	}
}
