// Package id provides widget identifiers.
//
// An ID is either a custom stable name chosen by the application or a
// unique number drawn from a process-wide counter. IDs are comparable and
// can be used as map keys, so the same widget always maps to the same
// external identifier (for example in an accessibility tree).
package id

import (
	"strconv"
	"sync/atomic"
)

// next holds the last issued unique number. It starts at zero and is never
// reset, so unique IDs are never reused within a process.
var next atomic.Uint64

// ID identifies a widget.
type ID struct {
	name   string
	unique uint64
}

// New creates an ID with a custom stable name. Two IDs created with the
// same name are equal.
func New(name string) ID {
	return ID{name: name}
}

// Unique creates an ID that differs from every other ID produced by Unique.
// It is safe to call from multiple goroutines.
func Unique() ID {
	return ID{unique: next.Add(1)}
}

// IsCustom reports whether the ID was created from a name.
func (i ID) IsCustom() bool {
	return i.unique == 0
}

// Name returns the custom name, or "" for unique IDs.
func (i ID) Name() string {
	return i.name
}

// Number returns the generated number, or 0 for custom IDs.
func (i ID) Number() uint64 {
	return i.unique
}

func (i ID) String() string {
	if i.IsCustom() {
		return i.name
	}
	return "#" + strconv.FormatUint(i.unique, 10)
}

// Matches reports whether an optional ID equals target.
func Matches(candidate *ID, target ID) bool {
	return candidate != nil && *candidate == target
}
