package widgets

import (
	"slices"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// KeyedColumn is a Column whose children are matched to their state by key
// rather than by position, so reordering, inserting or removing children
// keeps every surviving child's state.
type KeyedColumn[M any, K comparable] struct {
	core.Base[M]
	// Keys holds one key per child, in the same order. Children past the
	// end of Keys are matched to their state by position.
	Keys            []K
	ChildrenWidgets []core.Element[M]
	Width           layout.Length
	Height          layout.Length
	Padding         geometry.Padding
	Spacing         float64
	Align           layout.Alignment
	ID              *id.ID
}

type keyedState[K comparable] struct {
	keys []K
}

// KeyedColumnOf creates an empty keyed column.
func KeyedColumnOf[M any, K comparable]() KeyedColumn[M, K] {
	return KeyedColumn[M, K]{}
}

// Push returns a copy of the column with child appended under key.
func (c KeyedColumn[M, K]) Push(key K, child core.Element[M]) KeyedColumn[M, K] {
	c.Keys = append(slices.Clip(c.Keys), key)
	c.ChildrenWidgets = append(slices.Clip(c.ChildrenWidgets), child)
	return c
}

// WithSpacing returns a copy of the column with spacing between children.
func (c KeyedColumn[M, K]) WithSpacing(spacing float64) KeyedColumn[M, K] {
	c.Spacing = spacing
	return c
}

// Element wraps the column.
func (c KeyedColumn[M, K]) Element() core.Element[M] { return core.NewElement[M](c) }

func (c KeyedColumn[M, K]) flex() flex[M] {
	return flex[M]{
		axis:     layout.Vertical,
		children: c.ChildrenWidgets,
		width:    c.Width,
		height:   c.Height,
		padding:  c.Padding,
		spacing:  c.Spacing,
		align:    c.Align,
		id:       c.ID,
	}
}

func (c KeyedColumn[M, K]) Tag() state.Tag { return state.TagOf[*keyedState[K]]() }

func (c KeyedColumn[M, K]) State() state.Cell {
	return state.NewCell(&keyedState[K]{keys: slices.Clone(c.Keys)})
}

func (c KeyedColumn[M, K]) Children() []*state.Tree { return c.flex().Children() }

func (c KeyedColumn[M, K]) Diff(tree *state.Tree) {
	st := state.Get[*keyedState[K]](&tree.State)
	state.DiffChildrenKeyed(tree, st.keys, c.ChildrenWidgets, c.Keys,
		func(t *state.Tree, child core.Element[M]) { t.Diff(child) },
		func(child core.Element[M]) *state.Tree { return state.New(child) },
	)
	st.keys = slices.Clone(c.Keys)
}

func (c KeyedColumn[M, K]) Size() (layout.Length, layout.Length) { return c.flex().Size() }

func (c KeyedColumn[M, K]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return c.flex().Layout(tree, r, limits)
}

func (c KeyedColumn[M, K]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	c.flex().Draw(tree, r, theme, style, l, cursor, viewport)
}

func (c KeyedColumn[M, K]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	return c.flex().OnEvent(tree, ev, l, cursor, r, clipboard, shell, viewport)
}

func (c KeyedColumn[M, K]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	c.flex().Operate(tree, l, r, op)
}

func (c KeyedColumn[M, K]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return c.flex().MouseInteraction(tree, l, cursor, viewport, r)
}

func (c KeyedColumn[M, K]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return c.flex().Overlay(tree, l, r, translation)
}
