package testing

import (
	"fmt"

	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/operation"
)

// Cursor returns the simulated cursor.
func (t *Tester[M]) Cursor() event.Cursor {
	return t.cursor
}

// MoveTo moves the cursor to p and sends CursorMoved.
func (t *Tester[M]) MoveTo(p geometry.Point) event.Status {
	t.cursor = event.Available(p)
	return t.Send(event.CursorMoved{Position: p})
}

// Leave makes the cursor unavailable and sends CursorLeft.
func (t *Tester[M]) Leave() event.Status {
	t.cursor = event.Unavailable()
	return t.Send(event.CursorLeft{})
}

// ClickAt moves the cursor to p and presses and releases the left button.
// It returns the status of the release.
func (t *Tester[M]) ClickAt(p geometry.Point) event.Status {
	t.MoveTo(p)
	t.Send(event.ButtonPressed{Button: event.ButtonLeft})
	return t.Send(event.ButtonReleased{Button: event.ButtonLeft})
}

// Click clicks the center of the widget identified by wid.
func (t *Tester[M]) Click(wid id.ID) error {
	match, err := t.Find(wid)
	if err != nil {
		return err
	}
	t.ClickAt(match.Bounds.Center())
	return nil
}

// Tap sends a touch press and lift at p for finger 0.
func (t *Tester[M]) Tap(p geometry.Point) event.Status {
	t.Send(event.Touch{Phase: event.TouchPressed, Position: p})
	return t.Send(event.Touch{Phase: event.TouchLifted, Position: p})
}

// Press sends a KeyPressed and a KeyReleased for key.
func (t *Tester[M]) Press(key event.Key, modifiers event.Modifiers) event.Status {
	status := t.Send(event.KeyPressed{Key: key, Modifiers: modifiers})
	t.Send(event.KeyReleased{Key: key, Modifiers: modifiers})
	return status
}

// Type sends one KeyPressed per rune of text. The view is rebuilt between
// runes so application-owned values stay current.
func (t *Tester[M]) Type(text string) {
	for _, r := range text {
		s := string(r)
		t.Send(event.KeyPressed{Key: event.Character(s), Text: s})
	}
}

// Scroll moves the cursor to p and scrolls by delta pixels.
func (t *Tester[M]) Scroll(p geometry.Point, delta geometry.Vector) event.Status {
	t.MoveTo(p)
	return t.Send(event.WheelScrolled{Delta: event.ScrollDelta{Unit: event.ScrollPixels, X: delta.X, Y: delta.Y}})
}

// Find returns the first widget identified by wid.
func (t *Tester[M]) Find(wid id.ID) (operation.Match, error) {
	match, ok := Operate(t, operation.FindByID(wid))
	if !ok {
		return operation.Match{}, fmt.Errorf("no widget with id %q", wid)
	}
	return match, nil
}

// Focus focuses the widget identified by wid and unfocuses every other one.
func (t *Tester[M]) Focus(wid id.ID) {
	Operate(t, operation.Focus[struct{}](wid))
}

// Focused returns the ID of the focused widget.
func (t *Tester[M]) Focused() (id.ID, bool) {
	return Operate(t, operation.FindFocused())
}
