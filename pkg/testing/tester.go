package testing

import (
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/engine"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
	// DefaultTextSize is the text size of the default measurer.
	DefaultTextSize = 16
)

// Tester mounts a view and drives it like an application shell: events go
// through engine.UserInterface.Update, published messages are handed to
// the update function and the view is rebuilt, keeping widget state.
type Tester[M any] struct {
	view   func() core.Element[M]
	update func(M)

	ui        *engine.UserInterface[M]
	cache     engine.Cache
	size      geometry.Size
	recorder  *renderer.Recorder
	clipboard *core.MemoryClipboard
	clock     *FakeClock
	theme     any
	style     renderer.Style
	cursor    event.Cursor

	messages    []M
	last        engine.State
	redraw      core.RedrawRequest
	needsRedraw bool
}

// New creates a tester for view. update receives every published message;
// it may be nil.
func New[M any](view func() core.Element[M], update func(M)) *Tester[M] {
	t := &Tester[M]{
		view:      view,
		update:    update,
		cache:     engine.NewCache(),
		size:      geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		recorder:  renderer.NewRecorder(renderer.DefaultFontMeasurer(DefaultTextSize)),
		clipboard: core.NewMemoryClipboard(),
		clock:     NewFakeClock(),
		style:     renderer.DefaultStyle(),
		cursor:    event.Unavailable(),
	}
	t.Pump()
	return t
}

// NewWithT creates a tester and registers a cleanup restoring the layout
// snapping setting, which tests commonly toggle.
func NewWithT[M any](tb testing.TB, view func() core.Element[M], update func(M)) *Tester[M] {
	tb.Helper()
	snap := layout.Snap()
	tb.Cleanup(func() { layout.SetSnap(snap) })
	return New(view, update)
}

// SetMeasurer replaces the text measurer and rebuilds.
func (t *Tester[M]) SetMeasurer(m renderer.TextMeasurer) {
	t.recorder = renderer.NewRecorder(m)
	t.Pump()
}

// SetSize resizes the surface, keeping widget state.
func (t *Tester[M]) SetSize(size geometry.Size) {
	t.size = size
	t.ui = t.ui.Relayout(size, t.recorder)
}

// SetTheme sets the theme passed to Draw.
func (t *Tester[M]) SetTheme(theme any) {
	t.theme = theme
}

// Size returns the surface size.
func (t *Tester[M]) Size() geometry.Size {
	return t.size
}

// Clock returns the fake clock used for RedrawRequested events.
func (t *Tester[M]) Clock() *FakeClock {
	return t.clock
}

// Clipboard returns the clipboard handed to widgets.
func (t *Tester[M]) Clipboard() *core.MemoryClipboard {
	return t.clipboard
}

// Renderer returns the recording renderer.
func (t *Tester[M]) Renderer() *renderer.Recorder {
	return t.recorder
}

// UI returns the current user interface.
func (t *Tester[M]) UI() *engine.UserInterface[M] {
	return t.ui
}

// Pump rebuilds the view against the cached state.
func (t *Tester[M]) Pump() {
	if t.ui != nil {
		t.cache = t.ui.IntoCache()
	}
	t.ui = engine.Build(t.view(), t.size, t.cache, t.recorder)
}

// Dispatch sends events as one batch and returns their statuses. Messages
// are applied and the view is rebuilt afterwards.
func (t *Tester[M]) Dispatch(events ...event.Event) []event.Status {
	state, statuses, messages := t.ui.Update(events, t.cursor, t.recorder, t.clipboard)
	t.last = state
	if !state.Outdated {
		t.redraw = t.redraw.Min(state.Redraw)
		if !state.Redraw.IsWait() {
			t.needsRedraw = true
		}
	}
	t.messages = append(t.messages, messages...)
	if t.update != nil {
		for _, m := range messages {
			t.update(m)
		}
	}
	if state.Outdated || len(messages) > 0 {
		t.Pump()
	}
	return statuses
}

// Send dispatches a single event and returns its status.
func (t *Tester[M]) Send(ev event.Event) event.Status {
	return t.Dispatch(ev)[0]
}

// Messages returns every message published so far.
func (t *Tester[M]) Messages() []M {
	return t.messages
}

// ClearMessages forgets the published messages.
func (t *Tester[M]) ClearMessages() {
	t.messages = nil
}

// State returns the state of the last Update.
func (t *Tester[M]) State() engine.State {
	return t.last
}

// Interaction returns the pointer appearance after the last Update.
func (t *Tester[M]) Interaction() event.Interaction {
	return t.last.Interaction
}

// NeedsRedraw reports whether a redraw was requested since the last Draw.
func (t *Tester[M]) NeedsRedraw() bool {
	return t.needsRedraw
}

// Tick advances the clock by one frame and sends a RedrawRequested event.
func (t *Tester[M]) Tick() event.Status {
	return t.Send(event.RedrawRequested{At: t.clock.Advance(FrameDuration)})
}

// PendingRedraw returns the earliest redraw requested since the last Draw
// or AdvanceToRedraw.
func (t *Tester[M]) PendingRedraw() core.RedrawRequest {
	return t.redraw
}

// AdvanceToRedraw moves the clock to the pending redraw and sends the
// matching RedrawRequested event. It reports false, doing nothing, when no
// redraw is pending.
func (t *Tester[M]) AdvanceToRedraw() (event.Status, bool) {
	at, ok := t.clock.Due(t.redraw)
	if !ok {
		return event.Ignored, false
	}
	t.redraw = core.RedrawWait()
	return t.Send(event.RedrawRequested{At: t.clock.AdvanceTo(at)}), true
}

// Draw draws the interface and returns the recorded operations.
func (t *Tester[M]) Draw() []renderer.Op {
	t.ui.Draw(t.recorder, t.theme, t.style, t.cursor)
	t.redraw = core.RedrawWait()
	t.needsRedraw = false
	return t.recorder.Ops()
}

// Operate runs op over the interface until it stops chaining.
func Operate[M, T any](t *Tester[M], op operation.Operation[T]) (T, bool) {
	return engine.RunOperation(t.ui, t.recorder, op)
}
