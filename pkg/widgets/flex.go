package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// flex implements the behavior shared by Row, Column and KeyedColumn.
type flex[M any] struct {
	axis     layout.Axis
	children []core.Element[M]
	width    layout.Length
	height   layout.Length
	padding  geometry.Padding
	spacing  float64
	align    layout.Alignment
	id       *id.ID
}

func (f flex[M]) Children() []*state.Tree {
	trees := make([]*state.Tree, len(f.children))
	for i, child := range f.children {
		trees[i] = state.New(child)
	}
	return trees
}

func (f flex[M]) Diff(tree *state.Tree) {
	state.DiffChildren(tree, f.children)
}

// Size encloses the children: a shrinking container fills along an axis as
// soon as one of its children does.
func (f flex[M]) Size() (layout.Length, layout.Length) {
	width, height := f.width, f.height
	for _, child := range f.children {
		w, h := child.Size()
		width = width.Enclose(w)
		height = height.Enclose(h)
	}
	return width, height
}

func (f flex[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	width, height := f.Size()
	return layout.ResolveFlex(layout.Flex{
		Axis:    f.axis,
		Width:   width,
		Height:  height,
		Padding: f.padding,
		Spacing: f.spacing,
		Align:   f.align,
	}, r, limits, f.children, tree.Children)
}

func (f flex[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	visible, ok := l.Bounds().Intersect(viewport)
	if !ok {
		return
	}
	for i, child := range f.children {
		child.Draw(tree.Children[i], r, theme, style, l.Child(i), cursor, visible)
	}
}

func (f flex[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	status := event.Ignored
	for i, child := range f.children {
		status = status.Merge(child.OnEvent(tree.Children[i], ev, l.Child(i), cursor, r, clipboard, shell, viewport))
	}
	return status
}

func (f flex[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	op.Container(f.id, l.Bounds(), func(v operation.Visitor) {
		for i, child := range f.children {
			child.Operate(tree.Children[i], l.Child(i), r, v)
		}
	})
}

func (f flex[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	interaction := event.InteractionNone
	for i, child := range f.children {
		interaction = interaction.Max(child.MouseInteraction(tree.Children[i], l.Child(i), cursor, viewport, r))
	}
	return interaction
}

func (f flex[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return core.ChildrenOverlay(f.children, tree.Children, l, r, translation)
}

// Row lays out its children horizontally.
//
// Children that fill their width share the space left by the others in
// proportion to their fill factors:
//
//	widgets.Row[Msg]{
//	    ChildrenWidgets: []core.Element[Msg]{label, widgets.FillSpace[Msg](), button},
//	    Width:           layout.Fill,
//	    Spacing:         8,
//	}
type Row[M any] struct {
	core.Base[M]
	ChildrenWidgets []core.Element[M]
	Width           layout.Length
	Height          layout.Length
	Padding         geometry.Padding
	Spacing         float64
	// Align positions children vertically.
	Align layout.Alignment
	ID    *id.ID
}

// RowOf creates a row holding children.
func RowOf[M any](children ...core.Element[M]) Row[M] {
	return Row[M]{ChildrenWidgets: children}
}

// WithSpacing returns a copy of the row with spacing between children.
func (w Row[M]) WithSpacing(spacing float64) Row[M] {
	w.Spacing = spacing
	return w
}

// WithPadding returns a copy of the row with padding.
func (w Row[M]) WithPadding(padding geometry.Padding) Row[M] {
	w.Padding = padding
	return w
}

// WithWidth returns a copy of the row with a width policy.
func (w Row[M]) WithWidth(width layout.Length) Row[M] {
	w.Width = width
	return w
}

// WithID returns a copy of the row identified by wid.
func (w Row[M]) WithID(wid id.ID) Row[M] {
	w.ID = &wid
	return w
}

// Element wraps the row.
func (w Row[M]) Element() core.Element[M] { return core.NewElement[M](w) }

func (w Row[M]) flex() flex[M] {
	return flex[M]{
		axis:     layout.Horizontal,
		children: w.ChildrenWidgets,
		width:    w.Width,
		height:   w.Height,
		padding:  w.Padding,
		spacing:  w.Spacing,
		align:    w.Align,
		id:       w.ID,
	}
}

func (w Row[M]) Children() []*state.Tree { return w.flex().Children() }
func (w Row[M]) Diff(tree *state.Tree)   { w.flex().Diff(tree) }

func (w Row[M]) Size() (layout.Length, layout.Length) { return w.flex().Size() }

func (w Row[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return w.flex().Layout(tree, r, limits)
}

func (w Row[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	w.flex().Draw(tree, r, theme, style, l, cursor, viewport)
}

func (w Row[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	return w.flex().OnEvent(tree, ev, l, cursor, r, clipboard, shell, viewport)
}

func (w Row[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	w.flex().Operate(tree, l, r, op)
}

func (w Row[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return w.flex().MouseInteraction(tree, l, cursor, viewport, r)
}

func (w Row[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return w.flex().Overlay(tree, l, r, translation)
}

// Column lays out its children vertically. See Row.
type Column[M any] struct {
	core.Base[M]
	ChildrenWidgets []core.Element[M]
	Width           layout.Length
	Height          layout.Length
	Padding         geometry.Padding
	Spacing         float64
	// Align positions children horizontally.
	Align layout.Alignment
	ID    *id.ID
}

// ColumnOf creates a column holding children.
func ColumnOf[M any](children ...core.Element[M]) Column[M] {
	return Column[M]{ChildrenWidgets: children}
}

// WithSpacing returns a copy of the column with spacing between children.
func (w Column[M]) WithSpacing(spacing float64) Column[M] {
	w.Spacing = spacing
	return w
}

// WithPadding returns a copy of the column with padding.
func (w Column[M]) WithPadding(padding geometry.Padding) Column[M] {
	w.Padding = padding
	return w
}

// WithHeight returns a copy of the column with a height policy.
func (w Column[M]) WithHeight(height layout.Length) Column[M] {
	w.Height = height
	return w
}

// WithID returns a copy of the column identified by wid.
func (w Column[M]) WithID(wid id.ID) Column[M] {
	w.ID = &wid
	return w
}

// Element wraps the column.
func (w Column[M]) Element() core.Element[M] { return core.NewElement[M](w) }

func (w Column[M]) flex() flex[M] {
	return flex[M]{
		axis:     layout.Vertical,
		children: w.ChildrenWidgets,
		width:    w.Width,
		height:   w.Height,
		padding:  w.Padding,
		spacing:  w.Spacing,
		align:    w.Align,
		id:       w.ID,
	}
}

func (w Column[M]) Children() []*state.Tree { return w.flex().Children() }
func (w Column[M]) Diff(tree *state.Tree)   { w.flex().Diff(tree) }

func (w Column[M]) Size() (layout.Length, layout.Length) { return w.flex().Size() }

func (w Column[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return w.flex().Layout(tree, r, limits)
}

func (w Column[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	w.flex().Draw(tree, r, theme, style, l, cursor, viewport)
}

func (w Column[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	return w.flex().OnEvent(tree, ev, l, cursor, r, clipboard, shell, viewport)
}

func (w Column[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	w.flex().Operate(tree, l, r, op)
}

func (w Column[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return w.flex().MouseInteraction(tree, l, cursor, viewport, r)
}

func (w Column[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return w.flex().Overlay(tree, l, r, translation)
}
