package widgets

import (
	"fmt"
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

// PickList shows the selected option and opens a menu of all options in an
// overlay when clicked.
//
// While the menu is open it sees every event first. Clicking an option
// publishes OnSelect; clicking anywhere else closes the menu, and that
// click reaches nothing underneath.
type PickList[M any, T comparable] struct {
	core.Base[M]
	Options     []T
	Selected    *T
	Placeholder string
	OnSelect    func(T) M
	// Label formats options. Nil uses fmt.Sprint.
	Label    func(T) string
	TextSize float64
	Width    layout.Length
	Padding  geometry.Padding
	ID       *id.ID
}

type pickListState struct {
	open    bool
	hovered int
}

// handleWidth is the room kept for the open/close indicator.
const handleWidth = 16

// PickListOf creates a pick list.
func PickListOf[M any, T comparable](options []T, selected *T, onSelect func(T) M) PickList[M, T] {
	return PickList[M, T]{Options: options, Selected: selected, OnSelect: onSelect}
}

// WithPlaceholder returns a copy of the pick list with a placeholder.
func (p PickList[M, T]) WithPlaceholder(placeholder string) PickList[M, T] {
	p.Placeholder = placeholder
	return p
}

// WithID returns a copy of the pick list identified by wid.
func (p PickList[M, T]) WithID(wid id.ID) PickList[M, T] {
	p.ID = &wid
	return p
}

// Element wraps the pick list.
func (p PickList[M, T]) Element() core.Element[M] { return core.NewElement[M](p) }

func (p PickList[M, T]) Tag() state.Tag { return state.TagOf[*pickListState]() }
func (p PickList[M, T]) State() state.Cell {
	return state.NewCell(&pickListState{hovered: -1})
}

func (p PickList[M, T]) Size() (layout.Length, layout.Length) { return p.Width, layout.Shrink }

func (p PickList[M, T]) label(option T) string {
	if p.Label != nil {
		return p.Label(option)
	}
	return fmt.Sprint(option)
}

func (p PickList[M, T]) padding() geometry.Padding {
	if p.Padding == (geometry.Padding{}) {
		return geometry.Symmetric(5, 10)
	}
	return p.Padding
}

func (p PickList[M, T]) selectedIndex() int {
	if p.Selected == nil {
		return -1
	}
	for i, option := range p.Options {
		if option == *p.Selected {
			return i
		}
	}
	return -1
}

// Layout sizes the header to fit the longest option.
func (p PickList[M, T]) Layout(_ *state.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	size := textSize(r, p.TextSize)
	return layout.Padded(limits, p.Width, layout.Shrink, p.padding(), func(l layout.Limits) layout.Node {
		intrinsic := r.MeasureText(p.Placeholder, size)
		intrinsic.Height = math.Max(intrinsic.Height, r.MeasureText(" ", size).Height)
		for _, option := range p.Options {
			intrinsic = intrinsic.Max(r.MeasureText(p.label(option), size))
		}
		intrinsic.Width += handleWidth
		return layout.NewNode(l.Resolve(p.Width, layout.Shrink, intrinsic))
	})
}

func (p PickList[M, T]) Draw(tree *state.Tree, r renderer.Renderer, theme any, _ renderer.Style,
	l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	th := themeOf(theme)
	st := state.Get[*pickListState](&tree.State)
	bounds := l.Bounds()
	text := l.Child(0).Bounds()
	size := textSize(r, p.TextSize)

	border := th.Border
	if st.open || cursor.IsOver(bounds) {
		border = th.Focus
	}
	r.FillQuad(renderer.Quad{Bounds: bounds, Border: renderer.Border{Color: border, Width: 1, Radius: 2}}, th.Background)

	clip, ok := text.Intersect(viewport)
	if !ok {
		return
	}
	if p.Selected != nil {
		r.FillText(renderer.Text{Content: p.label(*p.Selected), Size: size}, text.Position(), th.Text, clip)
	} else {
		r.FillText(renderer.Text{Content: p.Placeholder, Size: size}, text.Position(), th.Placeholder, clip)
	}
	handle := "▾"
	if st.open {
		handle = "▴"
	}
	r.FillText(renderer.Text{Content: handle, Size: size},
		geometry.Point{X: text.X + text.Width - handleWidth, Y: text.Y}, th.Text, clip)
}

func (p PickList[M, T]) OnEvent(tree *state.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	_ renderer.Renderer, _ core.Clipboard, shell *core.Shell[M], _ geometry.Rectangle) event.Status {
	if shell.IsEventCaptured() {
		return event.Ignored
	}
	st := state.Get[*pickListState](&tree.State)
	bounds := l.Bounds()

	pressed := false
	switch e := ev.(type) {
	case event.ButtonPressed:
		pressed = e.Button == event.ButtonLeft && cursor.IsOver(bounds)
	case event.Touch:
		pressed = e.Phase == event.TouchPressed && bounds.Contains(e.Position)
	}
	if !pressed || len(p.Options) == 0 {
		return event.Ignored
	}

	st.open = true
	st.hovered = p.selectedIndex()
	shell.RequestRedraw()
	shell.CaptureEvent()
	return event.Captured
}

func (p PickList[M, T]) Operate(tree *state.Tree, l layout.Layout, _ renderer.Renderer, op operation.Visitor) {
	op.Custom(p.ID, l.Bounds(), state.Get[*pickListState](&tree.State))
}

func (p PickList[M, T]) MouseInteraction(_ *state.Tree, l layout.Layout, cursor event.Cursor,
	_ geometry.Rectangle, _ renderer.Renderer) event.Interaction {
	if cursor.IsOver(l.Bounds()) {
		return event.InteractionPointer
	}
	return event.InteractionNone
}

// IsOpen reports whether a pick list state, as exposed through a Custom
// operation, has its menu open.
func IsOpen(s any) bool {
	st, ok := s.(*pickListState)
	return ok && st.open
}

func (p PickList[M, T]) Overlay(tree *state.Tree, l layout.Layout, r renderer.Renderer, translation geometry.Vector) *core.OverlayElement[M] {
	st := state.Get[*pickListState](&tree.State)
	if !st.open {
		return nil
	}
	return core.NewOverlayElement[M](&pickListMenu[M, T]{
		list:   p,
		state:  st,
		anchor: l.Bounds().Translate(translation),
	})
}

// pickListMenu is the overlay listing the options of an open PickList.
type pickListMenu[M any, T comparable] struct {
	core.OverlayBase[M]
	list   PickList[M, T]
	state  *pickListState
	anchor geometry.Rectangle
}

// Layout places the menu below the header, or above it when it does not
// fit below but does fit above. Each option gets one child node.
func (m *pickListMenu[M, T]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	size := textSize(r, m.list.TextSize)
	padding := m.list.padding()
	itemHeight := r.MeasureText(" ", size).Height + padding.Vertical()

	items := make([]layout.Node, len(m.list.Options))
	for i := range items {
		items[i] = layout.NewNode(geometry.Size{Width: m.anchor.Width, Height: itemHeight}).
			MoveTo(geometry.Point{Y: float64(i) * itemHeight})
	}
	height := float64(len(items)) * itemHeight

	y := m.anchor.Y + m.anchor.Height
	if y+height > bounds.Height && m.anchor.Y-height >= 0 {
		y = m.anchor.Y - height
	}
	return layout.NodeWithChildren(geometry.Size{Width: m.anchor.Width, Height: height}, items).
		MoveTo(geometry.Point{X: m.anchor.X, Y: y})
}

func (m *pickListMenu[M, T]) Draw(r renderer.Renderer, theme any, _ renderer.Style, l layout.Layout, _ event.Cursor) {
	th := themeOf(theme)
	size := textSize(r, m.list.TextSize)
	padding := m.list.padding()
	selected := m.list.selectedIndex()

	r.FillQuad(renderer.Quad{Bounds: l.Bounds(), Border: renderer.Border{Color: th.Border, Width: 1}}, th.Surface)
	for i, item := range l.Children() {
		bounds := item.Bounds()
		color := th.Text
		if i == m.state.hovered || (m.state.hovered < 0 && i == selected) {
			r.FillQuad(renderer.Quad{Bounds: bounds}, th.Primary)
			color = th.OnPrimary
		}
		r.FillText(renderer.Text{Content: m.list.label(m.list.Options[i]), Size: size},
			geometry.Point{X: bounds.X + padding.Left, Y: bounds.Y + padding.Top}, color, bounds)
	}
}

func (m *pickListMenu[M, T]) itemAt(l layout.Layout, p geometry.Point) int {
	for i, item := range l.Children() {
		if item.Bounds().Contains(p) {
			return i
		}
	}
	return -1
}

func (m *pickListMenu[M, T]) OnEvent(ev event.Event, l layout.Layout, cursor event.Cursor, _ renderer.Renderer,
	_ core.Clipboard, shell *core.Shell[M]) event.Status {
	switch e := ev.(type) {
	case event.CursorMoved:
		if i := m.itemAt(l, e.Position); i >= 0 && i != m.state.hovered {
			m.state.hovered = i
			shell.RequestRedraw()
		}
		return event.Ignored

	case event.ButtonPressed:
		if e.Button != event.ButtonLeft {
			return event.Ignored
		}
		p, ok := cursor.Position()
		if !ok {
			return event.Ignored
		}
		return m.pick(m.itemAt(l, p), shell)

	case event.Touch:
		if e.Phase != event.TouchPressed {
			return event.Ignored
		}
		return m.pick(m.itemAt(l, e.Position), shell)

	case event.KeyPressed:
		switch e.Key {
		case event.KeyEscape:
			return m.pick(-1, shell)
		case event.KeyEnter:
			return m.pick(m.state.hovered, shell)
		case event.KeyDown:
			m.state.hovered = min(m.state.hovered+1, len(m.list.Options)-1)
		case event.KeyUp:
			m.state.hovered = max(m.state.hovered-1, 0)
		default:
			return event.Ignored
		}
		shell.RequestRedraw()
		shell.CaptureEvent()
		return event.Captured
	}
	return event.Ignored
}

// pick closes the menu, selecting option i when it is valid.
func (m *pickListMenu[M, T]) pick(i int, shell *core.Shell[M]) event.Status {
	m.state.open = false
	m.state.hovered = -1
	if i >= 0 && i < len(m.list.Options) && m.list.OnSelect != nil {
		shell.Publish(m.list.OnSelect(m.list.Options[i]))
	}
	shell.RequestRedraw()
	shell.CaptureEvent()
	return event.Captured
}

func (m *pickListMenu[M, T]) Operate(l layout.Layout, _ renderer.Renderer, op operation.Visitor) {
	op.Container(m.list.ID, l.Bounds(), func(v operation.Visitor) {
		for i, item := range l.Children() {
			v.Custom(nil, item.Bounds(), m.list.Options[i])
		}
	})
}

func (m *pickListMenu[M, T]) MouseInteraction(l layout.Layout, cursor event.Cursor, _ geometry.Rectangle,
	_ renderer.Renderer) event.Interaction {
	if p, ok := cursor.Position(); ok && m.itemAt(l, p) >= 0 {
		return event.InteractionPointer
	}
	return event.InteractionNone
}
