package widgets

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// TextInput is a single-line editable text field.
//
// The application owns the value: edits are published through OnInput and
// take effect when the next widget tree carries the new Value. The cursor,
// selection and focus live in the widget state and survive rebuilds.
//
//	widgets.TextInputOf("Name", model.name).
//	    WithOnInput(func(s string) Msg { return NameChanged(s) })
type TextInput[M any] struct {
	core.Base[M]
	Placeholder string
	Value       string
	// OnInput receives the edited value. Nil makes the input read-only.
	OnInput func(string) M
	// OnSubmit is published when Enter is pressed while focused.
	OnSubmit *M
	// Obscure draws bullets instead of the value and disables copying.
	Obscure  bool
	TextSize float64
	// Width defaults to Fill in TextInputOf.
	Width   layout.Length
	Padding geometry.Padding
	ID      *id.ID
}

// cursorEnd stands for the end of the value until it is clamped.
const cursorEnd = math.MaxInt

// textInputState implements operation.Focusable and operation.TextInput.
type textInputState struct {
	focused bool
	// cursor is a rune index; anchor is the other end of the selection,
	// equal to cursor when nothing is selected.
	cursor int
	anchor int
}

func (st *textInputState) IsFocused() bool { return st.focused }

func (st *textInputState) Focus() {
	st.focused = true
	st.MoveCursorToEnd()
}

func (st *textInputState) Unfocus() {
	st.focused = false
	st.anchor = st.cursor
}

func (st *textInputState) MoveCursorToFront() { st.MoveCursorTo(0) }
func (st *textInputState) MoveCursorToEnd()   { st.MoveCursorTo(cursorEnd) }

func (st *textInputState) MoveCursorTo(position int) {
	st.cursor = max(position, 0)
	st.anchor = st.cursor
}

func (st *textInputState) SelectAll() {
	st.anchor = 0
	st.cursor = cursorEnd
}

// clamp bounds cursor and anchor to a value of n runes.
func (st *textInputState) clamp(n int) {
	st.cursor = min(max(st.cursor, 0), n)
	st.anchor = min(max(st.anchor, 0), n)
}

// selection returns the ordered selection range.
func (st *textInputState) selection() (start, end int) {
	return min(st.cursor, st.anchor), max(st.cursor, st.anchor)
}

// TextInputOf creates a filling text input.
func TextInputOf[M any](placeholder, value string) TextInput[M] {
	return TextInput[M]{Placeholder: placeholder, Value: value, Width: layout.Fill}
}

// WithOnInput returns a copy of the input publishing edits through f.
func (t TextInput[M]) WithOnInput(f func(string) M) TextInput[M] {
	t.OnInput = f
	return t
}

// WithOnSubmit returns a copy of the input publishing message on Enter.
func (t TextInput[M]) WithOnSubmit(message M) TextInput[M] {
	t.OnSubmit = &message
	return t
}

// WithObscure returns a copy of the input hiding its value.
func (t TextInput[M]) WithObscure(obscure bool) TextInput[M] {
	t.Obscure = obscure
	return t
}

// WithID returns a copy of the input identified by wid.
func (t TextInput[M]) WithID(wid id.ID) TextInput[M] {
	t.ID = &wid
	return t
}

// Element wraps the input.
func (t TextInput[M]) Element() core.Element[M] { return core.NewElement[M](t) }

func (t TextInput[M]) Tag() state.Tag    { return state.TagOf[*textInputState]() }
func (t TextInput[M]) State() state.Cell { return state.NewCell(&textInputState{}) }

func (t TextInput[M]) Size() (layout.Length, layout.Length) { return t.Width, layout.Shrink }

func (t TextInput[M]) padding() geometry.Padding {
	if t.Padding == (geometry.Padding{}) {
		return geometry.All(5)
	}
	return t.Padding
}

// shown returns the text drawn and hit-tested for the current value.
func (t TextInput[M]) shown() string {
	if t.Obscure {
		return strings.Repeat("•", utf8.RuneCountInString(t.Value))
	}
	return t.Value
}

func (t TextInput[M]) Layout(_ *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	size := textSize(r, t.TextSize)
	return layout.Padded(limits, t.Width, layout.Shrink, t.padding(), func(l layout.Limits) layout.Node {
		measured := r.MeasureText(t.shown(), size)
		lineHeight := r.MeasureText(" ", size).Height
		return layout.NewNode(l.Resolve(t.Width, layout.Shrink, geometry.Size{
			Width:  measured.Width,
			Height: math.Max(measured.Height, lineHeight),
		}))
	})
}

func (t TextInput[M]) Draw(tree *state.Tree, r renderer.Renderer, theme any, _ renderer.Style,
	l layout.Layout, _ event.Cursor, viewport geometry.Rectangle) {
	th := themeOf(theme)
	st := state.Get[*textInputState](&tree.State)
	bounds := l.Bounds()
	text := l.Child(0).Bounds()
	size := textSize(r, t.TextSize)

	border := th.Border
	if st.focused {
		border = th.Focus
	}
	r.FillQuad(renderer.Quad{Bounds: bounds, Border: renderer.Border{Color: border, Width: 1, Radius: 2}}, th.Background)

	clip, ok := text.Intersect(viewport)
	if !ok {
		return
	}
	shown := t.shown()
	if shown == "" {
		r.FillText(renderer.Text{Content: t.Placeholder, Size: size}, text.Position(), th.Placeholder, clip)
	} else {
		r.FillText(renderer.Text{Content: shown, Size: size}, text.Position(), th.Text, clip)
	}
	if !st.focused {
		return
	}

	runes := []rune(shown)
	cursor, anchor := min(st.cursor, len(runes)), min(st.anchor, len(runes))
	offset := func(i int) float64 { return r.MeasureText(string(runes[:i]), size).Width }
	if cursor != anchor {
		start, end := min(cursor, anchor), max(cursor, anchor)
		r.FillQuad(renderer.Quad{Bounds: geometry.Rectangle{
			X: text.X + offset(start), Y: text.Y, Width: offset(end) - offset(start), Height: text.Height,
		}}, th.Selection)
		return
	}
	r.FillQuad(renderer.Quad{Bounds: geometry.Rectangle{
		X: text.X + offset(cursor), Y: text.Y, Width: 1, Height: text.Height,
	}}, th.Text)
}

func (t TextInput[M]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell[M], _ geometry.Rectangle) event.Status {
	st := state.Get[*textInputState](&tree.State)
	runes := []rune(t.Value)
	st.clamp(len(runes))

	switch e := ev.(type) {
	case event.ButtonPressed:
		if e.Button != event.ButtonLeft {
			return event.Ignored
		}
		p, over := cursor.Position()
		if !over || !l.Bounds().Contains(p) || shell.IsEventCaptured() {
			if st.focused {
				st.Unfocus()
				shell.RequestRedraw()
			}
			return event.Ignored
		}
		return t.click(st, l, r, p.X, shell)

	case event.Touch:
		if e.Phase != event.TouchPressed {
			return event.Ignored
		}
		if !l.Bounds().Contains(e.Position) || shell.IsEventCaptured() {
			if st.focused {
				st.Unfocus()
			}
			return event.Ignored
		}
		return t.click(st, l, r, e.Position.X, shell)

	case event.KeyPressed:
		if !st.focused {
			return event.Ignored
		}
		shell.CaptureEvent()
		shell.RequestRedraw()
		t.key(st, e, runes, clipboard, shell)
		return event.Captured
	}
	return event.Ignored
}

func (t TextInput[M]) click(st *textInputState, l layout.Layout, r renderer.Renderer, x float64,
	shell *core.Shell[M]) event.Status {
	text := l.Child(0).Bounds()
	st.focused = true
	st.MoveCursorTo(r.HitTestText(t.shown(), textSize(r, t.TextSize), x-text.X))
	shell.RequestRedraw()
	shell.CaptureEvent()
	return event.Captured
}

// key applies a key press to the focused input.
func (t TextInput[M]) key(st *textInputState, e event.KeyPressed, runes []rune, clipboard core.Clipboard,
	shell *core.Shell[M]) {
	start, end := st.selection()
	selected := start != end
	extend := e.Modifiers.Has(event.Shift)

	move := func(to int) {
		st.cursor = min(max(to, 0), len(runes))
		if !extend {
			st.anchor = st.cursor
		}
	}
	edit := func(replacement string, caret int) {
		if t.OnInput == nil {
			return
		}
		value := string(runes[:start]) + replacement + string(runes[end:])
		shell.Publish(t.OnInput(value))
		st.MoveCursorTo(caret)
	}

	if e.Modifiers.Command() {
		switch e.Key {
		case event.Character("a"):
			st.anchor, st.cursor = 0, len(runes)
			return
		case event.Character("c"):
			if selected && !t.Obscure {
				clipboard.Write(core.ClipboardStandard, string(runes[start:end]))
			}
			return
		case event.Character("x"):
			if selected && !t.Obscure {
				clipboard.Write(core.ClipboardStandard, string(runes[start:end]))
				edit("", start)
			}
			return
		case event.Character("v"):
			if pasted, ok := clipboard.Read(core.ClipboardStandard); ok {
				pasted = strings.ReplaceAll(pasted, "\n", " ")
				edit(pasted, start+utf8.RuneCountInString(pasted))
			}
			return
		}
	}

	switch e.Key {
	case event.KeyEnter:
		if t.OnSubmit != nil {
			shell.Publish(*t.OnSubmit)
		}
	case event.KeyEscape:
		st.Unfocus()
	case event.KeyBackspace:
		switch {
		case selected:
			edit("", start)
		case start > 0:
			start--
			edit("", start)
		}
	case event.KeyDelete:
		switch {
		case selected:
			edit("", start)
		case end < len(runes):
			end++
			edit("", start)
		}
	case event.KeyLeft:
		if selected && !extend {
			move(start)
		} else {
			move(st.cursor - 1)
		}
	case event.KeyRight:
		if selected && !extend {
			move(end)
		} else {
			move(st.cursor + 1)
		}
	case event.KeyHome, event.KeyUp:
		move(0)
	case event.KeyEnd, event.KeyDown:
		move(len(runes))
	default:
		if e.Text != "" && !e.Modifiers.Has(event.Control) {
			edit(e.Text, start+utf8.RuneCountInString(e.Text))
		}
	}
}

func (t TextInput[M]) Operate(tree *state.Tree, l layout.Layout, _ renderer.Renderer, op operation.Visitor) {
	st := state.Get[*textInputState](&tree.State)
	op.Focusable(t.ID, l.Bounds(), st)
	op.TextInput(t.ID, l.Bounds(), st)
}

func (t TextInput[M]) MouseInteraction(_ *state.Tree, l layout.Layout, cursor event.Cursor,
	_ geometry.Rectangle, _ renderer.Renderer) event.Interaction {
	if !cursor.IsOver(l.Bounds()) {
		return event.InteractionNone
	}
	if t.OnInput == nil {
		return event.InteractionNotAllowed
	}
	return event.InteractionText
}
