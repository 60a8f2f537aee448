package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// Focusable is the state of a widget that can take keyboard focus.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}

// Count summarizes the focusable widgets of a tree.
type Count struct {
	// Focused is the index of the focused widget, or -1.
	Focused int
	// Total is the number of focusable widgets.
	Total int
}

// Focus focuses the widget identified by target and unfocuses every other.
func Focus[T any](target id.ID) Operation[T] {
	return &focus[T]{target: target}
}

type focus[T any] struct {
	Base[T]
	target id.ID
}

func (f *focus[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(f)
}

func (f *focus[T]) Focusable(wid *id.ID, _ geometry.Rectangle, state Focusable) {
	if id.Matches(wid, f.target) {
		state.Focus()
	} else {
		state.Unfocus()
	}
}

// Unfocus unfocuses every focusable widget.
func Unfocus[T any]() Operation[T] {
	return &unfocus[T]{}
}

type unfocus[T any] struct {
	Base[T]
}

func (u *unfocus[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(u)
}

func (u *unfocus[T]) Focusable(_ *id.ID, _ geometry.Rectangle, state Focusable) {
	state.Unfocus()
}

// CountFocusable counts the focusable widgets and finds the focused one.
func CountFocusable() Operation[Count] {
	return &counter{count: Count{Focused: -1}}
}

type counter struct {
	Base[Count]
	count Count
}

func (c *counter) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(c)
}

func (c *counter) Focusable(_ *id.ID, _ geometry.Rectangle, state Focusable) {
	if state.IsFocused() {
		c.count.Focused = c.count.Total
	}
	c.count.Total++
}

func (c *counter) Finish() Outcome[Count] {
	return Some(c.count)
}

// FocusNext moves focus to the focusable widget after the focused one.
// When nothing is focused the first widget is focused; when the last one is
// focused, focus is dropped.
func FocusNext[T any]() Operation[T] {
	return Then(CountFocusable(), func(c Count) Operation[T] {
		return &focusNext[T]{count: c}
	})
}

type focusNext[T any] struct {
	Base[T]
	count   Count
	current int
}

func (f *focusNext[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(f)
}

func (f *focusNext[T]) Focusable(_ *id.ID, _ geometry.Rectangle, state Focusable) {
	switch {
	case f.count.Focused < 0 && f.current == 0:
		state.Focus()
	case f.count.Focused >= 0 && f.current == f.count.Focused:
		state.Unfocus()
	case f.count.Focused >= 0 && f.current == f.count.Focused+1:
		state.Focus()
	}
	f.current++
}

// FocusPrevious moves focus to the focusable widget before the focused one.
// When nothing is focused the last widget is focused; when the first one is
// focused, focus is dropped.
func FocusPrevious[T any]() Operation[T] {
	return Then(CountFocusable(), func(c Count) Operation[T] {
		return &focusPrevious[T]{count: c}
	})
}

type focusPrevious[T any] struct {
	Base[T]
	count   Count
	current int
}

func (f *focusPrevious[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(f)
}

func (f *focusPrevious[T]) Focusable(_ *id.ID, _ geometry.Rectangle, state Focusable) {
	if f.count.Total == 0 {
		return
	}
	switch {
	case f.count.Focused < 0 && f.current == f.count.Total-1:
		state.Focus()
	case f.count.Focused >= 0 && f.current == f.count.Focused:
		state.Unfocus()
	case f.count.Focused > 0 && f.current == f.count.Focused-1:
		state.Focus()
	}
	f.current++
}

// FindFocused returns the ID of the focused widget. Widgets without an ID
// are ignored.
func FindFocused() Operation[id.ID] {
	return &findFocused{}
}

type findFocused struct {
	Base[id.ID]
	focused *id.ID
}

func (f *findFocused) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(f)
}

func (f *findFocused) Focusable(wid *id.ID, _ geometry.Rectangle, state Focusable) {
	if wid != nil && state.IsFocused() {
		found := *wid
		f.focused = &found
	}
}

func (f *findFocused) Finish() Outcome[id.ID] {
	if f.focused == nil {
		return None[id.ID]()
	}
	return Some(*f.focused)
}

// IsFocused reports whether the focusable widget identified by target is
// focused. The outcome is None when no such widget exists.
func IsFocused(target id.ID) Operation[bool] {
	return &isFocused{target: target}
}

type isFocused struct {
	Base[bool]
	target id.ID
	found  bool
	result bool
}

func (f *isFocused) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	if f.found {
		return
	}
	recurse(f)
}

func (f *isFocused) Focusable(wid *id.ID, _ geometry.Rectangle, state Focusable) {
	if id.Matches(wid, f.target) {
		f.found = true
		f.result = state.IsFocused()
	}
}

func (f *isFocused) Finish() Outcome[bool] {
	if !f.found {
		return None[bool]()
	}
	return Some(f.result)
}
