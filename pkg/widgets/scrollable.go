package widgets

import (
	"math"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Direction is the set of axes a Scrollable scrolls along.
type Direction uint8

const (
	// ScrollVertical is the zero value.
	ScrollVertical Direction = iota
	ScrollHorizontal
	ScrollBoth
)

func (d Direction) vertical() bool   { return d != ScrollHorizontal }
func (d Direction) horizontal() bool { return d != ScrollVertical }

// Viewport describes the visible part of a Scrollable's content.
type Viewport struct {
	Offset  geometry.Vector
	Bounds  geometry.Rectangle
	Content geometry.Rectangle
}

// RelativeOffset returns the offset as a fraction of the scrollable range.
func (v Viewport) RelativeOffset() operation.RelativeOffset {
	rel := func(offset, viewport, content float64) float64 {
		if span := content - viewport; span > 0 {
			return offset / span
		}
		return 0
	}
	return operation.RelativeOffset{
		X: rel(v.Offset.X, v.Bounds.Width, v.Content.Width),
		Y: rel(v.Offset.Y, v.Bounds.Height, v.Content.Height),
	}
}

// Scrollable shows a window onto content that may be larger than itself.
//
// The content is laid out without a bound along the scrolling axes. Wheel
// events over the scrollable move the window; SnapTo, ScrollTo and ScrollBy
// operations move it programmatically.
type Scrollable[M any] struct {
	core.Base[M]
	Content   core.Element[M]
	Direction Direction
	Width     layout.Length
	Height    layout.Length
	// OnScroll is called with the new viewport whenever the offset changes.
	OnScroll func(Viewport) M
	ID       *id.ID
}

// ScrollableOf wraps content in a vertical scrollable.
func ScrollableOf[M any](content core.Element[M]) Scrollable[M] {
	return Scrollable[M]{Content: content}
}

// WithDirection returns a copy of the scrollable scrolling along d.
func (s Scrollable[M]) WithDirection(d Direction) Scrollable[M] {
	s.Direction = d
	return s
}

// WithHeight returns a copy of the scrollable with a height policy.
func (s Scrollable[M]) WithHeight(height layout.Length) Scrollable[M] {
	s.Height = height
	return s
}

// WithID returns a copy of the scrollable identified by wid.
func (s Scrollable[M]) WithID(wid id.ID) Scrollable[M] {
	s.ID = &wid
	return s
}

// Element wraps the scrollable.
func (s Scrollable[M]) Element() core.Element[M] { return core.NewElement[M](s) }

// offset is one axis of a scroll position, either in pixels or as a
// fraction of the range. Relative offsets survive content resizes.
type offset struct {
	relative bool
	value    float64
}

func (o offset) absolute(viewport, content float64) float64 {
	span := math.Max(content-viewport, 0)
	if o.relative {
		return span * o.value
	}
	return math.Max(0, math.Min(o.value, span))
}

// scrollState implements operation.Scrollable.
type scrollState struct {
	x, y offset
}

func (st *scrollState) SnapTo(o operation.RelativeOffset) {
	st.x = offset{relative: true, value: clamp01(o.X)}
	st.y = offset{relative: true, value: clamp01(o.Y)}
}

func (st *scrollState) ScrollTo(o operation.AbsoluteOffset) {
	st.x = offset{value: math.Max(o.X, 0)}
	st.y = offset{value: math.Max(o.Y, 0)}
}

func (st *scrollState) ScrollBy(o operation.AbsoluteOffset, bounds, content geometry.Rectangle) {
	x := st.x.absolute(bounds.Width, content.Width)
	y := st.y.absolute(bounds.Height, content.Height)
	st.x = offset{value: x + o.X}
	st.y = offset{value: y + o.Y}
	st.x.value = st.x.absolute(bounds.Width, content.Width)
	st.y.value = st.y.absolute(bounds.Height, content.Height)
}

// translation returns how far the content is shifted up and left.
func (st *scrollState) translation(d Direction, bounds, content geometry.Rectangle) geometry.Vector {
	var v geometry.Vector
	if d.horizontal() {
		v.X = st.x.absolute(bounds.Width, content.Width)
	}
	if d.vertical() {
		v.Y = st.y.absolute(bounds.Height, content.Height)
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

func (s Scrollable[M]) Tag() state.Tag    { return state.TagOf[*scrollState]() }
func (s Scrollable[M]) State() state.Cell { return state.NewCell(&scrollState{}) }

func (s Scrollable[M]) Children() []*state.Tree {
	return []*state.Tree{state.New(s.Content)}
}

func (s Scrollable[M]) Diff(tree *state.Tree) {
	state.DiffChildren(tree, []core.Element[M]{s.Content})
}

func (s Scrollable[M]) Size() (layout.Length, layout.Length) { return s.Width, s.Height }

func (s Scrollable[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(s.Width).Height(s.Height)

	maxContent := limits.Max()
	if s.Direction.horizontal() {
		maxContent.Width = geometry.Infinity
	}
	if s.Direction.vertical() {
		maxContent.Height = geometry.Infinity
	}
	content := s.Content.Layout(tree.Children[0], r, layout.NewLimits(geometry.Zero, maxContent))

	size := limits.Resolve(s.Width, s.Height, content.Size())
	return layout.NodeWithChildren(size, []layout.Node{content})
}

// viewport returns the bounds, content layout and translation at l.
func (s Scrollable[M]) viewport(tree *state.Tree, l layout.Layout) (geometry.Rectangle, layout.Layout, geometry.Vector) {
	st := state.Get[*scrollState](&tree.State)
	bounds := l.Bounds()
	content := l.Child(0)
	return bounds, content, st.translation(s.Direction, bounds, content.Bounds())
}

// contentCursor maps cursor into content coordinates. The content never
// sees a cursor outside the visible window.
func contentCursor(cursor event.Cursor, bounds geometry.Rectangle, translation geometry.Vector) event.Cursor {
	if !cursor.IsOver(bounds) {
		return event.Unavailable()
	}
	return cursor.Translate(translation)
}

func (s Scrollable[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	bounds, content, translation := s.viewport(tree, l)
	visible, ok := bounds.Intersect(viewport)
	if !ok {
		return
	}
	r.WithLayer(visible, func() {
		r.WithTranslation(translation.Neg(), func() {
			s.Content.Draw(tree.Children[0], r, theme, style, content,
				contentCursor(cursor, bounds, translation), visible.Translate(translation))
		})
	})
}

func (s Scrollable[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	bounds, content, translation := s.viewport(tree, l)

	status := s.Content.OnEvent(tree.Children[0], ev, content, contentCursor(cursor, bounds, translation),
		r, clipboard, shell, bounds.Translate(translation))
	if status == event.Captured || shell.IsEventCaptured() {
		return event.Captured
	}

	wheel, ok := ev.(event.WheelScrolled)
	if !ok || !cursor.IsOver(bounds) {
		return event.Ignored
	}

	delta := wheel.Delta.Pixels(r.DefaultTextSize())
	st := state.Get[*scrollState](&tree.State)
	st.ScrollBy(operation.AbsoluteOffset{X: -delta.X, Y: -delta.Y}, bounds, content.Bounds())

	after := st.translation(s.Direction, bounds, content.Bounds())
	if after == translation {
		return event.Ignored
	}
	if s.OnScroll != nil {
		shell.Publish(s.OnScroll(Viewport{Offset: after, Bounds: bounds, Content: content.Bounds()}))
	}
	shell.RequestRedraw()
	shell.CaptureEvent()
	return event.Captured
}

// Operate reports the scrollable and then its content, translated to where
// it currently appears.
func (s Scrollable[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	bounds, content, translation := s.viewport(tree, l)
	st := state.Get[*scrollState](&tree.State)
	op.Scrollable(s.ID, bounds, content.Bounds(), translation, st)
	op.Container(s.ID, bounds, func(v operation.Visitor) {
		s.Content.Operate(tree.Children[0], content.Translate(translation.Neg()), r, v)
	})
}

func (s Scrollable[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	bounds, content, translation := s.viewport(tree, l)
	return s.Content.MouseInteraction(tree.Children[0], content, contentCursor(cursor, bounds, translation),
		bounds.Translate(translation), r)
}

func (s Scrollable[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	_, content, offset := s.viewport(tree, l)
	return s.Content.Overlay(tree.Children[0], content, r, translation.Add(offset.Neg()))
}
