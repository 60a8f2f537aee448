package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestLatticeErrorString(t *testing.T) {
	err := &LatticeError{
		Op:   "layout.Resolve",
		Kind: KindLayout,
		Err:  stderrors.New("unbounded main axis"),
	}
	want := "layout.Resolve [layout]: unbounded main axis"
	if got := err.Error(); got != want {
		t.Errorf("LatticeError.Error() = %q, want %q", got, want)
	}
}

func TestLatticeErrorUnwrap(t *testing.T) {
	inner := &StateError{Expected: "*widgets.buttonState", Actual: "none"}
	err := &LatticeError{Op: "state.Get", Kind: KindState, Err: inner}

	var target *StateError
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to find StateError")
	}
	if target.Expected != "*widgets.buttonState" {
		t.Errorf("Expected = %q", target.Expected)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindState, "state"},
		{KindLayout, "layout"},
		{KindEvent, "event"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "cmd.layout"
	if got, want := err.Error(), "panic in cmd.layout: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *LatticeError
	SetHandler(&testHandler{onError: func(err *LatticeError) { captured = err }})
	defer SetHandler(nil)

	Report(&LatticeError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestFatalReportsThenPanics(t *testing.T) {
	var captured *LatticeError
	SetHandler(&testHandler{onError: func(err *LatticeError) { captured = err }})
	defer SetHandler(nil)

	stateErr := &StateError{Expected: "int", Actual: "string"}
	defer func() {
		r := recover()
		if r != stateErr {
			t.Fatalf("recovered %v, want the StateError", r)
		}
		if captured == nil || captured.Kind != KindState {
			t.Fatalf("expected KindState report, got %+v", captured)
		}
		if captured.StackTrace == "" {
			t.Error("expected stack trace on fatal report")
		}
	}()
	Fatal("state.Get", stateErr)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Output: &buf}
	h.HandleError(&LatticeError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("missing version")})
	h.HandlePanic(&PanicError{Op: "cmd.layout", Value: "boom"})

	out := buf.String()
	if !strings.Contains(out, "[lattice error] config.Load: missing version") {
		t.Errorf("unexpected error line: %q", out)
	}
	if !strings.Contains(out, "[lattice panic] cmd.layout: boom") {
		t.Errorf("unexpected panic line: %q", out)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Output: &buf, Verbose: true}
	h.HandleError(&LatticeError{Op: "state.Get", Kind: KindState, Err: stderrors.New("x"), StackTrace: "frame"})
	if !strings.Contains(buf.String(), "[state]") || !strings.Contains(buf.String(), "Stack trace:\nframe") {
		t.Errorf("verbose output missing kind or stack: %q", buf.String())
	}
}

type testHandler struct {
	onError func(*LatticeError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *LatticeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
