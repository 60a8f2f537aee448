// Package event defines the input events dispatched through a widget tree
// and the status widgets report after handling them.
//
// Event is a closed set: only the types declared in this package implement
// it. Widgets switch on the concrete type.
package event

import (
	"time"

	"github.com/go-drift/lattice/pkg/geometry"
)

// Event is an input event delivered by the shell.
type Event interface {
	isEvent()
}

// KeyPressed is sent when a key is pressed.
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
	// Text is the text produced by the key press, if any.
	Text string
}

// KeyReleased is sent when a key is released.
type KeyReleased struct {
	Key       Key
	Modifiers Modifiers
}

// ModifiersChanged is sent when the modifier keys change.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// CursorMoved is sent when the mouse cursor moves.
type CursorMoved struct {
	Position geometry.Point
}

// CursorEntered is sent when the cursor enters the window.
type CursorEntered struct{}

// CursorLeft is sent when the cursor leaves the window.
type CursorLeft struct{}

// ButtonPressed is sent when a mouse button is pressed.
type ButtonPressed struct {
	Button Button
}

// ButtonReleased is sent when a mouse button is released.
type ButtonReleased struct {
	Button Button
}

// WheelScrolled is sent when the mouse wheel or touchpad scrolls.
type WheelScrolled struct {
	Delta ScrollDelta
}

// WindowResized is sent when the window changes size.
type WindowResized struct {
	Size geometry.Size
}

// WindowMoved is sent when the window changes position.
type WindowMoved struct {
	Position geometry.Point
}

// WindowCloseRequested is sent when the user asks to close the window.
type WindowCloseRequested struct{}

// WindowFocusChanged is sent when the window gains or loses focus.
type WindowFocusChanged struct {
	Focused bool
}

// RedrawRequested is sent when the window is about to be redrawn.
type RedrawRequested struct {
	At time.Time
}

// FingerID identifies a touch point for the duration of a gesture.
type FingerID uint64

// TouchPhase is the stage of a touch point.
type TouchPhase int

const (
	// TouchPressed starts a touch point.
	TouchPressed TouchPhase = iota

	// TouchMoved moves a touch point.
	TouchMoved

	// TouchLifted ends a touch point normally.
	TouchLifted

	// TouchLost ends a touch point abnormally.
	TouchLost
)

func (p TouchPhase) String() string {
	switch p {
	case TouchPressed:
		return "pressed"
	case TouchMoved:
		return "moved"
	case TouchLifted:
		return "lifted"
	case TouchLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Touch is sent for touch screen input.
type Touch struct {
	Finger   FingerID
	Phase    TouchPhase
	Position geometry.Point
}

func (KeyPressed) isEvent()           {}
func (KeyReleased) isEvent()          {}
func (ModifiersChanged) isEvent()     {}
func (CursorMoved) isEvent()          {}
func (CursorEntered) isEvent()        {}
func (CursorLeft) isEvent()           {}
func (ButtonPressed) isEvent()        {}
func (ButtonReleased) isEvent()       {}
func (WheelScrolled) isEvent()        {}
func (WindowResized) isEvent()        {}
func (WindowMoved) isEvent()          {}
func (WindowCloseRequested) isEvent() {}
func (WindowFocusChanged) isEvent()   {}
func (RedrawRequested) isEvent()      {}
func (Touch) isEvent()                {}

// IsPointer reports whether ev is a mouse or touch event.
func IsPointer(ev Event) bool {
	switch ev.(type) {
	case CursorMoved, CursorEntered, CursorLeft, ButtonPressed, ButtonReleased, WheelScrolled, Touch:
		return true
	}
	return false
}

// IsKeyboard reports whether ev is a keyboard event.
func IsKeyboard(ev Event) bool {
	switch ev.(type) {
	case KeyPressed, KeyReleased, ModifiersChanged:
		return true
	}
	return false
}
