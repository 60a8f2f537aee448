package core

import (
	"time"

	"github.com/go-drift/lattice/pkg/event"
)

// Shell collects the effects of handling one batch of events: published
// messages, the capture status, redraw requests and layout invalidation.
type Shell[M any] struct {
	messages       []M
	status         event.Status
	redraw         RedrawRequest
	layoutInvalid  bool
	widgetsInvalid bool
}

// NewShell returns an empty shell.
func NewShell[M any]() *Shell[M] {
	return &Shell[M]{}
}

// Publish queues message for the application.
func (s *Shell[M]) Publish(message M) {
	s.messages = append(s.messages, message)
}

// Messages returns the published messages in order.
func (s *Shell[M]) Messages() []M {
	return s.messages
}

// IsEmpty reports whether no message was published.
func (s *Shell[M]) IsEmpty() bool {
	return len(s.messages) == 0
}

// CaptureEvent marks the current event as captured.
func (s *Shell[M]) CaptureEvent() {
	s.status = event.Captured
}

// EventStatus returns the capture status of the current event.
func (s *Shell[M]) EventStatus() event.Status {
	return s.status
}

// IsEventCaptured reports whether the current event was captured.
func (s *Shell[M]) IsEventCaptured() bool {
	return s.status == event.Captured
}

// ResetEventStatus clears the capture status before the next event.
func (s *Shell[M]) ResetEventStatus() {
	s.status = event.Ignored
}

// RequestRedraw asks for a new frame as soon as possible.
func (s *Shell[M]) RequestRedraw() {
	s.redraw = RedrawNextFrame()
}

// RequestRedrawAt asks for a new frame at t. Earlier requests win.
func (s *Shell[M]) RequestRedrawAt(t time.Time) {
	s.redraw = s.redraw.Min(RedrawAt(t))
}

// RedrawRequest returns the most urgent redraw request made so far.
func (s *Shell[M]) RedrawRequest() RedrawRequest {
	return s.redraw
}

// InvalidateLayout asks for the widget tree to be laid out again.
func (s *Shell[M]) InvalidateLayout() {
	s.layoutInvalid = true
}

// IsLayoutInvalid reports whether the layout was invalidated.
func (s *Shell[M]) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// RevalidateLayout runs relayout if the layout is invalid and marks it valid.
func (s *Shell[M]) RevalidateLayout(relayout func()) {
	if !s.layoutInvalid {
		return
	}
	s.layoutInvalid = false
	relayout()
}

// InvalidateWidgets asks for the application to rebuild its widgets.
func (s *Shell[M]) InvalidateWidgets() {
	s.widgetsInvalid = true
}

// AreWidgetsInvalid reports whether the widgets were invalidated.
func (s *Shell[M]) AreWidgetsInvalid() bool {
	return s.widgetsInvalid
}

// MergeShell folds src into dst, converting messages with f.
func MergeShell[A, B any](dst *Shell[B], src *Shell[A], f func(A) B) {
	for _, m := range src.messages {
		dst.messages = append(dst.messages, f(m))
	}
	src.messages = nil
	dst.layoutInvalid = dst.layoutInvalid || src.layoutInvalid
	dst.widgetsInvalid = dst.widgetsInvalid || src.widgetsInvalid
	dst.redraw = dst.redraw.Min(src.redraw)
	dst.status = dst.status.Merge(src.status)
}
