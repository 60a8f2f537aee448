package core

import (
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Widget is implemented by every widget. M is the application message type.
//
// Every method receiving a tree receives the state.Tree node reconciled
// against this widget, so tree.State holds the cell created by State and
// tree.Children mirrors the widget's children.
type Widget[M any] interface {
	// Tag, State, Children and Diff drive reconciliation.
	state.Widget

	// Size returns the width and height policies consulted by parents.
	Size() (width, height layout.Length)

	// Layout resolves the widget under limits narrowed by its parent.
	Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node

	// Draw emits drawing primitives. It must not mutate tree.
	Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
		l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle)

	// OnEvent handles an input event. It may mutate its own state and
	// publish messages on shell.
	OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
		r renderer.Renderer, clipboard Clipboard, shell *Shell[M], viewport geometry.Rectangle) event.Status

	// Operate describes the widget to op. Containers forward op to their
	// children from a Container callback.
	Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor)

	// MouseInteraction returns the pointer appearance over the widget.
	MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
		viewport geometry.Rectangle, r renderer.Renderer) event.Interaction

	// Overlay returns the overlay the widget currently shows, or nil.
	// translation is the offset applied to l by scrolling ancestors.
	Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *OverlayElement[M]
}

// Base provides default implementations for the optional parts of Widget.
// A widget embedding Base is stateless and childless, ignores events,
// takes no part in operations and never shows an overlay.
type Base[M any] struct{}

// Tag returns the stateless tag.
func (Base[M]) Tag() state.Tag { return state.Stateless() }

// State returns an empty cell.
func (Base[M]) State() state.Cell { return state.None() }

// Children returns no child trees.
func (Base[M]) Children() []*state.Tree { return nil }

// Diff drops any child trees.
func (Base[M]) Diff(tree *state.Tree) {
	clear(tree.Children)
	tree.Children = tree.Children[:0]
}

// Draw draws nothing.
func (Base[M]) Draw(*state.Tree, renderer.Renderer, any, renderer.Style, layout.Layout, event.Cursor, geometry.Rectangle) {
}

// OnEvent ignores the event.
func (Base[M]) OnEvent(*state.Tree, event.Event, layout.Layout, event.Cursor, renderer.Renderer, Clipboard, *Shell[M], geometry.Rectangle) event.Status {
	return event.Ignored
}

// Operate does nothing.
func (Base[M]) Operate(*state.Tree, layout.Layout, renderer.Renderer, operation.Visitor) {}

// MouseInteraction expresses no preference.
func (Base[M]) MouseInteraction(*state.Tree, layout.Layout, event.Cursor, geometry.Rectangle, renderer.Renderer) event.Interaction {
	return event.InteractionNone
}

// Overlay returns nil.
func (Base[M]) Overlay(*state.Tree, layout.Layout, renderer.Renderer, geometry.Vector) *OverlayElement[M] {
	return nil
}
