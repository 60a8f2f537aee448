package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets atomic.Pointer hold an interface value.
type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

// SetHandler installs h as the process-wide error handler. Nil restores a
// non-verbose LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerBox{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	if box := current.Load(); box != nil {
		return box.h
	}
	// First use without SetHandler.
	current.CompareAndSwap(nil, &handlerBox{h: &LogHandler{}})
	return current.Load().h
}

// Report stamps err with the current time, unless it already has one, and
// hands it to the installed handler.
func Report(err *LatticeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Fatal reports err as a KindState error and panics with it. It is used for
// invariant violations that must never be silently ignored.
func Fatal(op string, err error) {
	Report(&LatticeError{
		Op:         op,
		Kind:       KindState,
		Err:        err,
		StackTrace: CaptureStack(),
	})
	panic(err)
}

// Recover reports a panic in progress and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("cmd.layout")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), which typically
// turns the panic into a returned error.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	reportRecovered(op, r)
	if callback != nil {
		callback(r)
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// maxStackDepth bounds the frames recorded by CaptureStack.
const maxStackDepth = 32

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}
