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

// Container decorates and positions a single child.
//
// The child is laid out with loose limits inside the padding and then
// aligned within the space left over:
//
//	widgets.Container[Msg]{
//	    Content:  form,
//	    Width:    layout.Fill,
//	    MaxWidth: 480,
//	    AlignX:   layout.Center,
//	    Padding:  geometry.All(16),
//	}
type Container[M any] struct {
	core.Base[M]
	Content core.Element[M]
	Width   layout.Length
	Height  layout.Length
	// MaxWidth and MaxHeight cap the limits; zero means no cap.
	MaxWidth  float64
	MaxHeight float64
	Padding   geometry.Padding
	AlignX    layout.Alignment
	AlignY    layout.Alignment
	// Background is drawn behind the content when not transparent.
	Background renderer.Color
	Border     renderer.Border
	// TextColor overrides the text color inherited by the content.
	TextColor renderer.Color
	ID        *id.ID
}

// ContainerOf wraps content.
func ContainerOf[M any](content core.Element[M]) Container[M] {
	return Container[M]{Content: content}
}

// Centered returns a container filling its parent with content centered.
func Centered[M any](content core.Element[M]) core.Element[M] {
	return Container[M]{
		Content: content,
		Width:   layout.Fill,
		Height:  layout.Fill,
		AlignX:  layout.Center,
		AlignY:  layout.Center,
	}.Element()
}

// WithPadding returns a copy of the container with padding.
func (c Container[M]) WithPadding(padding geometry.Padding) Container[M] {
	c.Padding = padding
	return c
}

// WithBackground returns a copy of the container with a background color.
func (c Container[M]) WithBackground(color renderer.Color) Container[M] {
	c.Background = color
	return c
}

// WithMaxWidth returns a copy of the container with a maximum width.
func (c Container[M]) WithMaxWidth(w float64) Container[M] {
	c.MaxWidth = w
	return c
}

// WithID returns a copy of the container identified by wid.
func (c Container[M]) WithID(wid id.ID) Container[M] {
	c.ID = &wid
	return c
}

// Element wraps the container.
func (c Container[M]) Element() core.Element[M] { return core.NewElement[M](c) }

func (c Container[M]) Children() []*state.Tree {
	return []*state.Tree{state.New(c.Content)}
}

func (c Container[M]) Diff(tree *state.Tree) {
	state.DiffChildren(tree, []core.Element[M]{c.Content})
}

func (c Container[M]) Size() (layout.Length, layout.Length) {
	w, h := c.Content.Size()
	return c.Width.Enclose(w), c.Height.Enclose(h)
}

func (c Container[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	if c.MaxWidth > 0 {
		limits = limits.MaxWidth(c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		limits = limits.MaxHeight(c.MaxHeight)
	}
	width, height := c.Size()
	return layout.Positioned(limits, width, height, c.Padding,
		func(l layout.Limits) layout.Node {
			return c.Content.Layout(tree.Children[0], r, l.Loose())
		},
		func(content layout.Node, space geometry.Size) layout.Node {
			return content.Align(c.AlignX, c.AlignY, space)
		})
}

func (c Container[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	bounds := l.Bounds()
	if !c.Background.IsTransparent() || c.Border.Width > 0 {
		r.FillQuad(renderer.Quad{Bounds: bounds, Border: c.Border}, c.Background)
	}
	if !c.TextColor.IsTransparent() {
		style.TextColor = c.TextColor
	}
	if visible, ok := bounds.Intersect(viewport); ok {
		c.Content.Draw(tree.Children[0], r, theme, style, l.Child(0), cursor, visible)
	}
}

func (c Container[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	return c.Content.OnEvent(tree.Children[0], ev, l.Child(0), cursor, r, clipboard, shell, viewport)
}

func (c Container[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	op.Container(c.ID, l.Bounds(), func(v operation.Visitor) {
		c.Content.Operate(tree.Children[0], l.Child(0), r, v)
	})
}

func (c Container[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	return c.Content.MouseInteraction(tree.Children[0], l.Child(0), cursor, viewport, r)
}

func (c Container[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return c.Content.Overlay(tree.Children[0], l.Child(0), r, translation)
}
