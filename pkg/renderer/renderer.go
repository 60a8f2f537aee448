// Package renderer defines the drawing collaborator consumed by widgets.
//
// Widgets never depend on a concrete backend. They emit quads and text into
// a [Renderer] and measure text through its [TextMeasurer] half. The
// [Recorder] implementation records operations for tests and tooling.
package renderer

import "github.com/go-drift/lattice/pkg/geometry"

// TextMeasurer measures and hit-tests text during layout and event handling.
type TextMeasurer interface {
	// DefaultTextSize is used by widgets that do not specify a size.
	DefaultTextSize() float64
	// MeasureText returns the extents of content rendered at size.
	MeasureText(content string, size float64) geometry.Size
	// HitTestText returns the caret index (in runes) closest to the
	// horizontal offset x within a single line of content.
	HitTestText(content string, size float64, x float64) int
}

// Renderer receives drawing primitives from widgets.
type Renderer interface {
	TextMeasurer

	// FillQuad draws a rectangle with the given background.
	FillQuad(quad Quad, background Color)
	// FillText draws text with its top-left corner at position, clipped to clip.
	FillText(text Text, position geometry.Point, color Color, clip geometry.Rectangle)
	// WithLayer runs draw inside a new layer clipped to bounds.
	WithLayer(bounds geometry.Rectangle, draw func())
	// WithTranslation runs draw with all primitives offset by v.
	WithTranslation(v geometry.Vector, draw func())
	// Clear discards everything drawn so far.
	Clear()
}

// Border describes the outline of a quad.
type Border struct {
	Color  Color
	Width  float64
	Radius float64
}

// Quad is a rectangle primitive.
type Quad struct {
	Bounds geometry.Rectangle
	Border Border
}

// Text is a text primitive.
type Text struct {
	Content string
	Size    float64
}

// Style carries inherited drawing defaults from parent to child.
type Style struct {
	TextColor Color
}

// DefaultStyle returns black text.
func DefaultStyle() Style {
	return Style{TextColor: ColorBlack}
}
