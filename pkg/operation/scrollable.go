package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// RelativeOffset is a scroll position as a fraction of the scrollable range,
// from 0 to 1 on each axis.
type RelativeOffset struct {
	X, Y float64
}

// RelativeStart and RelativeEnd are the extremes of the scrollable range.
var (
	RelativeStart = RelativeOffset{}
	RelativeEnd   = RelativeOffset{X: 1, Y: 1}
)

// AbsoluteOffset is a scroll position in logical pixels.
type AbsoluteOffset struct {
	X, Y float64
}

// Scrollable is the state of a widget that scrolls its content.
type Scrollable interface {
	SnapTo(offset RelativeOffset)
	ScrollTo(offset AbsoluteOffset)
	ScrollBy(offset AbsoluteOffset, bounds, content geometry.Rectangle)
}

// SnapTo snaps the scrollable identified by target to offset.
func SnapTo[T any](target id.ID, offset RelativeOffset) Operation[T] {
	return &scrollOp[T]{target: target, apply: func(s Scrollable, _, _ geometry.Rectangle) {
		s.SnapTo(offset)
	}}
}

// ScrollTo scrolls the scrollable identified by target to offset.
func ScrollTo[T any](target id.ID, offset AbsoluteOffset) Operation[T] {
	return &scrollOp[T]{target: target, apply: func(s Scrollable, _, _ geometry.Rectangle) {
		s.ScrollTo(offset)
	}}
}

// ScrollBy scrolls the scrollable identified by target by offset.
func ScrollBy[T any](target id.ID, offset AbsoluteOffset) Operation[T] {
	return &scrollOp[T]{target: target, apply: func(s Scrollable, bounds, content geometry.Rectangle) {
		s.ScrollBy(offset, bounds, content)
	}}
}

type scrollOp[T any] struct {
	Base[T]
	target id.ID
	apply  func(s Scrollable, bounds, content geometry.Rectangle)
}

func (o *scrollOp[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(o)
}

func (o *scrollOp[T]) Scrollable(wid *id.ID, bounds, content geometry.Rectangle, _ geometry.Vector, state Scrollable) {
	if id.Matches(wid, o.target) {
		o.apply(state, bounds, content)
	}
}
