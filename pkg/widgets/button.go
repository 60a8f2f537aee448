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

// Button publishes a message when it is pressed and released.
//
// A button without OnPress is disabled: it draws dimmed and ignores input.
//
//	widgets.ButtonOf(widgets.TextOf[Msg]("Save").Element()).
//	    WithOnPress(Save{})
type Button[M any] struct {
	core.Base[M]
	Content core.Element[M]
	// OnPress is published on release over the button. Nil disables it.
	OnPress *M
	Width   layout.Length
	Height  layout.Length
	// Padding defaults to 5 by 10 when zero.
	Padding geometry.Padding
	// Background overrides the theme's primary color.
	Background renderer.Color
	ID         *id.ID
}

type buttonState struct {
	pressed bool
}

var defaultButtonPadding = geometry.Symmetric(5, 10)

// ButtonOf creates a disabled button showing content.
func ButtonOf[M any](content core.Element[M]) Button[M] {
	return Button[M]{Content: content}
}

// WithOnPress returns a copy of the button publishing message on press.
func (b Button[M]) WithOnPress(message M) Button[M] {
	b.OnPress = &message
	return b
}

// WithPadding returns a copy of the button with padding.
func (b Button[M]) WithPadding(padding geometry.Padding) Button[M] {
	b.Padding = padding
	return b
}

// WithID returns a copy of the button identified by wid.
func (b Button[M]) WithID(wid id.ID) Button[M] {
	b.ID = &wid
	return b
}

// Element wraps the button.
func (b Button[M]) Element() core.Element[M] { return core.NewElement[M](b) }

func (b Button[M]) Tag() state.Tag    { return state.TagOf[*buttonState]() }
func (b Button[M]) State() state.Cell { return state.NewCell(&buttonState{}) }

func (b Button[M]) Children() []*state.Tree {
	return []*state.Tree{state.New(b.Content)}
}

func (b Button[M]) Diff(tree *state.Tree) {
	state.DiffChildren(tree, []core.Element[M]{b.Content})
}

func (b Button[M]) Size() (layout.Length, layout.Length) { return b.Width, b.Height }

func (b Button[M]) padding() geometry.Padding {
	if b.Padding == (geometry.Padding{}) {
		return defaultButtonPadding
	}
	return b.Padding
}

func (b Button[M]) Layout(tree *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.Padded(limits, b.Width, b.Height, b.padding(), func(l layout.Limits) layout.Node {
		return b.Content.Layout(tree.Children[0], r, l)
	})
}

func (b Button[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, style renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	th := themeOf(theme)
	st := state.Get[*buttonState](&tree.State)
	bounds := l.Bounds()

	background := b.Background
	if background.IsTransparent() {
		background = th.Primary
	}
	switch {
	case b.OnPress == nil:
		background = th.Border
	case st.pressed:
		background = th.Focus
	}
	r.FillQuad(renderer.Quad{Bounds: bounds, Border: renderer.Border{Radius: 4}}, background)

	style.TextColor = th.OnPrimary
	b.Content.Draw(tree.Children[0], r, theme, style, l.Child(0), cursor, viewport)
}

func (b Button[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) event.Status {
	if b.Content.OnEvent(tree.Children[0], ev, l.Child(0), cursor, r, clipboard, shell, viewport) == event.Captured {
		return event.Captured
	}
	if b.OnPress == nil || shell.IsEventCaptured() {
		return event.Ignored
	}

	st := state.Get[*buttonState](&tree.State)
	bounds := l.Bounds()

	switch e := ev.(type) {
	case event.ButtonPressed:
		if e.Button == event.ButtonLeft && cursor.IsOver(bounds) {
			return b.press(st, shell)
		}
	case event.ButtonReleased:
		if e.Button == event.ButtonLeft {
			return b.release(st, cursor.IsOver(bounds), shell)
		}
	case event.Touch:
		switch e.Phase {
		case event.TouchPressed:
			if bounds.Contains(e.Position) {
				return b.press(st, shell)
			}
		case event.TouchLifted:
			return b.release(st, bounds.Contains(e.Position), shell)
		case event.TouchLost:
			st.pressed = false
		}
	}
	return event.Ignored
}

func (b Button[M]) press(st *buttonState, shell *core.Shell[M]) event.Status {
	st.pressed = true
	shell.RequestRedraw()
	shell.CaptureEvent()
	return event.Captured
}

func (b Button[M]) release(st *buttonState, over bool, shell *core.Shell[M]) event.Status {
	if !st.pressed {
		return event.Ignored
	}
	st.pressed = false
	shell.RequestRedraw()
	if over {
		shell.Publish(*b.OnPress)
	}
	shell.CaptureEvent()
	return event.Captured
}

func (b Button[M]) Operate(tree *state.Tree, l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	op.Container(b.ID, l.Bounds(), func(v operation.Visitor) {
		b.Content.Operate(tree.Children[0], l.Child(0), r, v)
	})
}

func (b Button[M]) MouseInteraction(tree *state.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	if cursor.IsOver(l.Bounds()) {
		if b.OnPress == nil {
			return event.InteractionNotAllowed
		}
		return event.InteractionPointer
	}
	return b.Content.MouseInteraction(tree.Children[0], l.Child(0), cursor, viewport, r)
}

func (b Button[M]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	return b.Content.Overlay(tree.Children[0], l.Child(0), r, translation)
}
