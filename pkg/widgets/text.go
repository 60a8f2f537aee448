package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Text displays a string measured by the renderer.
//
// Text shrinks to its content by default. With a Fill or Fixed width the
// content is positioned inside the resolved bounds according to Align.
type Text[M any] struct {
	core.Base[M]
	// Content is the text to display. Newlines start new lines.
	Content string
	// TextSize is the font size. Zero uses the renderer default.
	TextSize float64
	// Color overrides the inherited text color when not transparent.
	Color  renderer.Color
	Width  layout.Length
	Height layout.Length
	// Align positions the content horizontally.
	Align layout.Alignment
}

// TextOf creates a text widget.
func TextOf[M any](content string) Text[M] {
	return Text[M]{Content: content}
}

// WithTextSize returns a copy of the text with a font size.
func (t Text[M]) WithTextSize(size float64) Text[M] {
	t.TextSize = size
	return t
}

// WithColor returns a copy of the text with a color.
func (t Text[M]) WithColor(c renderer.Color) Text[M] {
	t.Color = c
	return t
}

// WithWidth returns a copy of the text with a width policy.
func (t Text[M]) WithWidth(width layout.Length) Text[M] {
	t.Width = width
	return t
}

// Element wraps the text.
func (t Text[M]) Element() core.Element[M] { return core.NewElement[M](t) }

func (t Text[M]) Size() (layout.Length, layout.Length) { return t.Width, t.Height }

func (t Text[M]) Layout(_ *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	size := textSize(r, t.TextSize)
	return layout.Sized(limits, t.Width, t.Height, func(layout.Limits) geometry.Size {
		return r.MeasureText(t.Content, size)
	})
}

func (t Text[M]) Draw(_ *state.Tree, r renderer.Renderer, _ any, style renderer.Style,
	l layout.Layout, _ event.Cursor, viewport geometry.Rectangle) {
	bounds := l.Bounds()
	clip, ok := bounds.Intersect(viewport)
	if !ok {
		return
	}
	size := textSize(r, t.TextSize)
	measured := r.MeasureText(t.Content, size)
	node := layout.NewNode(measured).Align(t.Align, layout.Start, bounds.Size())

	color := t.Color
	if color.IsTransparent() {
		color = style.TextColor
	}
	r.FillText(renderer.Text{Content: t.Content, Size: size},
		bounds.Position().Add(geometry.Vector{X: node.Bounds().X}), color, clip)
}
