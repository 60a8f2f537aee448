package core

import (
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Element is a type-erased handle to one widget. Elements are cheap values
// rebuilt on every application update. Element itself implements Widget by
// delegation, so slices of elements can be handed to generic helpers such as
// layout.ResolveFlex and state.DiffChildren.
type Element[M any] struct {
	widget Widget[M]
}

// NewElement wraps w.
func NewElement[M any](w Widget[M]) Element[M] {
	if e, ok := w.(Element[M]); ok {
		return e
	}
	return Element[M]{widget: w}
}

// Widget returns the wrapped widget.
func (e Element[M]) Widget() Widget[M] {
	return e.widget
}

func (e Element[M]) Tag() state.Tag          { return e.widget.Tag() }
func (e Element[M]) State() state.Cell       { return e.widget.State() }
func (e Element[M]) Children() []*state.Tree { return e.widget.Children() }
func (e Element[M]) Diff(tree *state.Tree)   { e.widget.Diff(tree) }

func (e Element[M]) Size() (layout.Length, layout.Length) {
	return e.widget.Size()
}

func (e Element[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return e.widget.Layout(tree, r, limits)
}

func (e Element[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	e.widget.Draw(tree, r, theme, style, l, cursor, viewport)
}

func (e Element[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard Clipboard, shell *Shell[M], viewport geometry.Rectangle) event.Status {
	return e.widget.OnEvent(tree, ev, l, cursor, r, clipboard, shell, viewport)
}

func (e Element[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	e.widget.Operate(tree, l, r, op)
}

func (e Element[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return e.widget.MouseInteraction(tree, l, cursor, viewport, r)
}

func (e Element[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *OverlayElement[M] {
	return e.widget.Overlay(tree, l, r, translation)
}

// Map adapts an element producing messages of type A into one producing
// messages of type B.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return Element[B]{widget: mapped[A, B]{inner: e, f: f}}
}

type mapped[A, B any] struct {
	inner Element[A]
	f     func(A) B
}

func (m mapped[A, B]) Tag() state.Tag          { return m.inner.Tag() }
func (m mapped[A, B]) State() state.Cell       { return m.inner.State() }
func (m mapped[A, B]) Children() []*state.Tree { return m.inner.Children() }
func (m mapped[A, B]) Diff(tree *state.Tree)   { m.inner.Diff(tree) }

func (m mapped[A, B]) Size() (layout.Length, layout.Length) {
	return m.inner.Size()
}

func (m mapped[A, B]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return m.inner.Layout(tree, r, limits)
}

func (m mapped[A, B]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	m.inner.Draw(tree, r, theme, style, l, cursor, viewport)
}

func (m mapped[A, B]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard Clipboard, shell *Shell[B], viewport geometry.Rectangle) event.Status {
	local := NewShell[A]()
	status := m.inner.OnEvent(tree, ev, l, cursor, r, clipboard, local, viewport)
	MergeShell(shell, local, m.f)
	return status
}

func (m mapped[A, B]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	m.inner.Operate(tree, l, r, op)
}

func (m mapped[A, B]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return m.inner.MouseInteraction(tree, l, cursor, viewport, r)
}

func (m mapped[A, B]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *OverlayElement[B] {
	o := m.inner.Overlay(tree, l, r, translation)
	if o == nil {
		return nil
	}
	return MapOverlay(o, m.f)
}
