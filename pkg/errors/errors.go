// Package errors provides structured error handling for the lattice toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindState indicates a widget state violation, such as a tag mismatch.
	KindState
	// KindLayout indicates a layout solver diagnostic.
	KindLayout
	// KindEvent indicates an event dispatch failure.
	KindEvent
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindLayout:
		return "layout"
	case KindEvent:
		return "event"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LatticeError represents a structured error in the toolkit.
type LatticeError struct {
	// Op is the operation that failed (e.g., "state.Get").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LatticeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LatticeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.layout").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// StateError reports that a state cell was read as a type it was not
// tagged with. It always indicates a broken reconciliation invariant.
type StateError struct {
	// Expected is the type name the caller asked for.
	Expected string
	// Actual is the type name stored in the cell, or "none" for stateless cells.
	Actual string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("widget state is %s, requested %s", e.Actual, e.Expected)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LatticeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
