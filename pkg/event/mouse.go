package event

import (
	"fmt"

	"github.com/go-drift/lattice/pkg/geometry"
)

// Button is a mouse button.
type Button int

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota

	// ButtonRight is the secondary button.
	ButtonRight

	// ButtonMiddle is the wheel button.
	ButtonMiddle

	// ButtonBack is the browser back button.
	ButtonBack

	// ButtonForward is the browser forward button.
	ButtonForward
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// ScrollUnit is the unit of a scroll delta.
type ScrollUnit int

const (
	// ScrollLines measures scrolling in text lines, as a mouse wheel does.
	ScrollLines ScrollUnit = iota

	// ScrollPixels measures scrolling in logical pixels, as a touchpad does.
	ScrollPixels
)

// ScrollDelta is the amount scrolled by a WheelScrolled event.
type ScrollDelta struct {
	Unit ScrollUnit
	X, Y float64
}

// Pixels converts the delta to pixels using lineHeight for line deltas.
func (d ScrollDelta) Pixels(lineHeight float64) geometry.Vector {
	if d.Unit == ScrollLines {
		return geometry.Vector{X: d.X * lineHeight, Y: d.Y * lineHeight}
	}
	return geometry.Vector{X: d.X, Y: d.Y}
}

// Cursor is the state of the mouse cursor as seen by a widget.
//
// The cursor is unavailable when something above the widget, such as an
// open overlay, already covers the pointer.
type Cursor struct {
	position  geometry.Point
	available bool
}

// Available returns a cursor at p.
func Available(p geometry.Point) Cursor {
	return Cursor{position: p, available: true}
}

// Unavailable returns a cursor that is over nothing.
func Unavailable() Cursor {
	return Cursor{}
}

// Position returns the cursor position and whether it is available.
func (c Cursor) Position() (geometry.Point, bool) {
	return c.position, c.available
}

// PositionIn returns the position relative to bounds, when the cursor is
// available and over bounds.
func (c Cursor) PositionIn(bounds geometry.Rectangle) (geometry.Point, bool) {
	if !c.IsOver(bounds) {
		return geometry.Point{}, false
	}
	return geometry.Point{X: c.position.X - bounds.X, Y: c.position.Y - bounds.Y}, true
}

// IsOver reports whether the cursor is available and within bounds.
func (c Cursor) IsOver(bounds geometry.Rectangle) bool {
	return c.available && bounds.Contains(c.position)
}

// Translate returns the cursor moved by v. Unavailable cursors stay so.
func (c Cursor) Translate(v geometry.Vector) Cursor {
	if c.available {
		c.position = c.position.Add(v)
	}
	return c
}

// Levitate returns an unavailable cursor. Widgets below an overlay use it
// so they do not react to a pointer covered by the overlay.
func (c Cursor) Levitate() Cursor {
	return Unavailable()
}

// Interaction is the pointer appearance a widget requests.
type Interaction int

const (
	// InteractionNone expresses no preference.
	InteractionNone Interaction = iota

	// InteractionIdle is the default arrow.
	InteractionIdle

	// InteractionPointer is the hand shown over clickable content.
	InteractionPointer

	// InteractionText is the caret shown over editable text.
	InteractionText

	// InteractionGrab is shown over draggable content.
	InteractionGrab

	// InteractionNotAllowed is shown over disabled content.
	InteractionNotAllowed
)

func (i Interaction) String() string {
	switch i {
	case InteractionIdle:
		return "idle"
	case InteractionPointer:
		return "pointer"
	case InteractionText:
		return "text"
	case InteractionGrab:
		return "grab"
	case InteractionNotAllowed:
		return "not-allowed"
	default:
		return "none"
	}
}

// Max returns the more specific of two interactions.
func (i Interaction) Max(other Interaction) Interaction {
	return max(i, other)
}
