package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// TextInput is the state of a widget that edits text.
type TextInput interface {
	MoveCursorToFront()
	MoveCursorToEnd()
	MoveCursorTo(position int)
	SelectAll()
}

// MoveCursorToFront moves the cursor of the text input identified by target
// to the start of its value.
func MoveCursorToFront[T any](target id.ID) Operation[T] {
	return &textOp[T]{target: target, apply: TextInput.MoveCursorToFront}
}

// MoveCursorToEnd moves the cursor of the text input identified by target
// to the end of its value.
func MoveCursorToEnd[T any](target id.ID) Operation[T] {
	return &textOp[T]{target: target, apply: TextInput.MoveCursorToEnd}
}

// MoveCursorTo moves the cursor of the text input identified by target to
// position.
func MoveCursorTo[T any](target id.ID, position int) Operation[T] {
	return &textOp[T]{target: target, apply: func(t TextInput) { t.MoveCursorTo(position) }}
}

// SelectAll selects the whole value of the text input identified by target.
func SelectAll[T any](target id.ID) Operation[T] {
	return &textOp[T]{target: target, apply: TextInput.SelectAll}
}

type textOp[T any] struct {
	Base[T]
	target id.ID
	apply  func(TextInput)
}

func (o *textOp[T]) Container(_ *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	recurse(o)
}

func (o *textOp[T]) TextInput(wid *id.ID, _ geometry.Rectangle, state TextInput) {
	if id.Matches(wid, o.target) {
		o.apply(state)
	}
}
