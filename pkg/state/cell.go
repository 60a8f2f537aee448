package state

import (
	"reflect"

	"github.com/go-drift/lattice/pkg/errors"
)

// Tag identifies the concrete type of some widget state.
type Tag struct {
	typ reflect.Type
}

type stateless struct{}

// TagOf returns the tag for state of type T.
func TagOf[T any]() Tag {
	return Tag{typ: reflect.TypeFor[T]()}
}

// Stateless returns the tag shared by every widget without state.
func Stateless() Tag {
	return TagOf[stateless]()
}

func (t Tag) String() string {
	if t.typ == nil {
		return "<nil>"
	}
	if t == Stateless() {
		return "stateless"
	}
	return t.typ.String()
}

// Cell holds one widget's private state together with the tag of its type.
// The zero Cell holds no state.
type Cell struct {
	tag   Tag
	value any
}

// None returns an empty cell for stateless widgets.
func None() Cell {
	return Cell{tag: Stateless()}
}

// NewCell returns a cell holding value, tagged with its static type.
func NewCell[T any](value T) Cell {
	return Cell{tag: TagOf[T](), value: value}
}

// IsNone reports whether the cell holds no state.
func (c *Cell) IsNone() bool {
	return c.value == nil && (c.tag.typ == nil || c.tag == Stateless())
}

// Tag returns the tag of the stored state.
func (c *Cell) Tag() Tag {
	if c.tag.typ == nil {
		return Stateless()
	}
	return c.tag
}

// Get returns the state stored in c as T.
//
// Asking for a type the cell was not tagged with means reconciliation
// handed a widget the wrong state; Get reports the error and panics.
func Get[T any](c *Cell) T {
	if c.tag != TagOf[T]() || c.IsNone() {
		errors.Fatal("state.Get", &errors.StateError{
			Expected: TagOf[T]().String(),
			Actual:   c.Tag().String(),
		})
	}
	return c.value.(T)
}

// Lookup returns the state stored in c as T and whether the tags matched.
func Lookup[T any](c *Cell) (T, bool) {
	var zero T
	if c.tag != TagOf[T]() || c.IsNone() {
		return zero, false
	}
	return c.value.(T), true
}

// Set replaces the value of a cell already tagged with T. Widgets with
// value-typed state use it to write back after mutation.
func Set[T any](c *Cell, value T) {
	if c.tag != TagOf[T]() {
		errors.Fatal("state.Set", &errors.StateError{
			Expected: TagOf[T]().String(),
			Actual:   c.Tag().String(),
		})
	}
	c.value = value
}

// Value returns the raw stored value, or nil for stateless cells.
func (c *Cell) Value() any {
	return c.value
}
