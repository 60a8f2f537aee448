package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Output overrides the destination. Nil means os.Stderr.
	Output io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Output != nil {
		return h.Output
	}
	return os.Stderr
}

// HandleError logs a LatticeError.
func (h *LogHandler) HandleError(err *LatticeError) {
	if err == nil {
		return
	}
	w := h.writer()
	if h.Verbose {
		fmt.Fprintf(w, "[lattice error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[lattice error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.writer()
	if err.Op != "" {
		fmt.Fprintf(w, "[lattice panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[lattice panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
