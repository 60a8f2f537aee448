// Package operation traverses a widget tree to query or update widget state
// without widgets knowing about each other.
//
// Widgets describe themselves to a [Visitor] from their Operate method:
// containers call Container and forward the visitor to their children from
// the recurse callback, and widgets with well-known state call Focusable,
// Scrollable, TextInput or Custom. An [Operation] is a Visitor that produces
// an [Outcome] once the traversal is over.
package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// Visitor receives the widgets of a tree during a traversal.
type Visitor interface {
	// Container is called by widgets holding children. The traversal only
	// descends when the visitor calls recurse, passing the visitor the
	// children should see.
	Container(wid *id.ID, bounds geometry.Rectangle, recurse func(Visitor))
	// Focusable is called by widgets that can take keyboard focus.
	Focusable(wid *id.ID, bounds geometry.Rectangle, state Focusable)
	// Scrollable is called by widgets that scroll their content.
	Scrollable(wid *id.ID, bounds, content geometry.Rectangle, translation geometry.Vector, state Scrollable)
	// TextInput is called by widgets that edit text.
	TextInput(wid *id.ID, bounds geometry.Rectangle, state TextInput)
	// Custom is called by widgets exposing any other kind of state.
	Custom(wid *id.ID, bounds geometry.Rectangle, state any)
}

// Operation is a Visitor with a result.
type Operation[T any] interface {
	Visitor
	// Finish is called after a complete traversal.
	Finish() Outcome[T]
}

type outcomeKind uint8

const (
	outcomeNone outcomeKind = iota
	outcomeSome
	outcomeChain
)

// Outcome is the result of an Operation: nothing, a value, or another
// operation to run over the tree next.
type Outcome[T any] struct {
	kind  outcomeKind
	value T
	next  Operation[T]
}

// None is the outcome of an operation that produced nothing, such as a
// search that found no match.
func None[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Some is the outcome of an operation that produced value.
func Some[T any](value T) Outcome[T] {
	return Outcome[T]{kind: outcomeSome, value: value}
}

// Chain is the outcome of an operation that must be followed by next.
func Chain[T any](next Operation[T]) Outcome[T] {
	return Outcome[T]{kind: outcomeChain, next: next}
}

// IsNone reports whether the outcome holds nothing.
func (o Outcome[T]) IsNone() bool {
	return o.kind == outcomeNone
}

// Value returns the produced value, if any.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.kind == outcomeSome
}

// Next returns the chained operation, if any.
func (o Outcome[T]) Next() (Operation[T], bool) {
	return o.next, o.kind == outcomeChain
}

func (o Outcome[T]) String() string {
	switch o.kind {
	case outcomeSome:
		return "Some"
	case outcomeChain:
		return "Chain"
	default:
		return "None"
	}
}

// Base implements the leaf methods of Visitor as no-ops and Finish as None.
// Operations embed it and override what they need. Container is left to the
// embedding type, because only it can pass itself to recurse.
type Base[T any] struct{}

func (Base[T]) Focusable(*id.ID, geometry.Rectangle, Focusable) {}

func (Base[T]) Scrollable(*id.ID, geometry.Rectangle, geometry.Rectangle, geometry.Vector, Scrollable) {
}

func (Base[T]) TextInput(*id.ID, geometry.Rectangle, TextInput) {}

func (Base[T]) Custom(*id.ID, geometry.Rectangle, any) {}

func (Base[T]) Finish() Outcome[T] { return None[T]() }

// Run traverses the tree with op until it stops chaining, and returns the
// final value. traverse must visit the whole tree once per call.
func Run[T any](op Operation[T], traverse func(Visitor)) (T, bool) {
	for {
		traverse(op)
		outcome := op.Finish()
		if next, ok := outcome.Next(); ok {
			op = next
			continue
		}
		return outcome.Value()
	}
}
