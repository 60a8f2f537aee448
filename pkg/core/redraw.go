package core

import (
	"fmt"
	"time"
)

type redrawKind uint8

const (
	redrawWait redrawKind = iota
	redrawAt
	redrawNextFrame
)

// RedrawRequest tells the shell when the next frame is needed.
// The zero value waits for the next event.
type RedrawRequest struct {
	kind redrawKind
	at   time.Time
}

// RedrawWait requests no frame until something changes.
func RedrawWait() RedrawRequest {
	return RedrawRequest{}
}

// RedrawNextFrame requests a frame as soon as possible.
func RedrawNextFrame() RedrawRequest {
	return RedrawRequest{kind: redrawNextFrame}
}

// RedrawAt requests a frame at t.
func RedrawAt(t time.Time) RedrawRequest {
	return RedrawRequest{kind: redrawAt, at: t}
}

// IsWait reports whether no frame is requested.
func (r RedrawRequest) IsWait() bool {
	return r.kind == redrawWait
}

// IsNextFrame reports whether a frame is requested immediately.
func (r RedrawRequest) IsNextFrame() bool {
	return r.kind == redrawNextFrame
}

// At returns the scheduled instant, if the request is scheduled.
func (r RedrawRequest) At() (time.Time, bool) {
	return r.at, r.kind == redrawAt
}

// Min returns the more urgent of two requests.
func (r RedrawRequest) Min(other RedrawRequest) RedrawRequest {
	switch {
	case r.kind == redrawNextFrame || other.kind == redrawNextFrame:
		return RedrawNextFrame()
	case r.kind == redrawAt && other.kind == redrawAt:
		if other.at.Before(r.at) {
			return other
		}
		return r
	case r.kind == redrawAt:
		return r
	default:
		return other
	}
}

func (r RedrawRequest) String() string {
	switch r.kind {
	case redrawNextFrame:
		return "next-frame"
	case redrawAt:
		return fmt.Sprintf("at(%s)", r.at.Format(time.RFC3339Nano))
	default:
		return "wait"
	}
}
