package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// Map converts the result of op with f.
func Map[A, B any](op Operation[A], f func(A) B) Operation[B] {
	return &mapped[A, B]{op: op, f: f}
}

type mapped[A, B any] struct {
	op Operation[A]
	f  func(A) B
}

func (m *mapped[A, B]) Container(wid *id.ID, bounds geometry.Rectangle, recurse func(Visitor)) {
	m.op.Container(wid, bounds, recurse)
}

func (m *mapped[A, B]) Focusable(wid *id.ID, bounds geometry.Rectangle, state Focusable) {
	m.op.Focusable(wid, bounds, state)
}

func (m *mapped[A, B]) Scrollable(wid *id.ID, bounds, content geometry.Rectangle, translation geometry.Vector, state Scrollable) {
	m.op.Scrollable(wid, bounds, content, translation, state)
}

func (m *mapped[A, B]) TextInput(wid *id.ID, bounds geometry.Rectangle, state TextInput) {
	m.op.TextInput(wid, bounds, state)
}

func (m *mapped[A, B]) Custom(wid *id.ID, bounds geometry.Rectangle, state any) {
	m.op.Custom(wid, bounds, state)
}

func (m *mapped[A, B]) Finish() Outcome[B] {
	outcome := m.op.Finish()
	if v, ok := outcome.Value(); ok {
		return Some(m.f(v))
	}
	if next, ok := outcome.Next(); ok {
		return Chain(Map(next, m.f))
	}
	return None[B]()
}

// Scoped applies op only to the children of the container identified by
// target. Widgets outside that container are skipped.
func Scoped[T any](target id.ID, op Operation[T]) Operation[T] {
	return &scoped[T]{target: target, op: op}
}

type scoped[T any] struct {
	Base[T]
	target id.ID
	op     Operation[T]
}

func (s *scoped[T]) Container(wid *id.ID, _ geometry.Rectangle, recurse func(Visitor)) {
	if id.Matches(wid, s.target) {
		recurse(s.op)
		return
	}
	recurse(s)
}

func (s *scoped[T]) Finish() Outcome[T] {
	outcome := s.op.Finish()
	if next, ok := outcome.Next(); ok {
		return Chain(Scoped(s.target, next))
	}
	return outcome
}

// Then runs op and, once it produces a value, continues with the operation
// built by f from that value.
func Then[A, B any](op Operation[A], f func(A) Operation[B]) Operation[B] {
	return &then[A, B]{op: op, f: f}
}

type then[A, B any] struct {
	op Operation[A]
	f  func(A) Operation[B]
}

func (t *then[A, B]) Container(wid *id.ID, bounds geometry.Rectangle, recurse func(Visitor)) {
	t.op.Container(wid, bounds, recurse)
}

func (t *then[A, B]) Focusable(wid *id.ID, bounds geometry.Rectangle, state Focusable) {
	t.op.Focusable(wid, bounds, state)
}

func (t *then[A, B]) Scrollable(wid *id.ID, bounds, content geometry.Rectangle, translation geometry.Vector, state Scrollable) {
	t.op.Scrollable(wid, bounds, content, translation, state)
}

func (t *then[A, B]) TextInput(wid *id.ID, bounds geometry.Rectangle, state TextInput) {
	t.op.TextInput(wid, bounds, state)
}

func (t *then[A, B]) Custom(wid *id.ID, bounds geometry.Rectangle, state any) {
	t.op.Custom(wid, bounds, state)
}

func (t *then[A, B]) Finish() Outcome[B] {
	outcome := t.op.Finish()
	if v, ok := outcome.Value(); ok {
		return Chain(t.f(v))
	}
	if next, ok := outcome.Next(); ok {
		return Chain(Then(next, t.f))
	}
	return None[B]()
}
