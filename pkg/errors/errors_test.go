package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "widgets.Button.Signal",
		Kind: KindSignal,
		Err:  stderrors.New("reentrant signal"),
	}
	want := "widgets.Button.Signal [signal]: reentrant signal"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUIErrorWithObject(t *testing.T) {
	err := &UIError{
		Op:     "widgets.Button.Signal",
		Kind:   KindSignal,
		Object: "btn-1",
		Err:    stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "object=btn-1") {
		t.Errorf("error string %q should contain object id", got)
	}
}

func TestUIErrorUnwrap(t *testing.T) {
	cause := &ParseError{Field: "button.pressed.main_color", Got: "nope"}
	err := &UIError{Op: "theme.Load", Kind: KindTheme, Err: cause}
	var pe *ParseError
	if !stderrors.As(err, &pe) {
		t.Fatal("expected errors.As to find the ParseError")
	}
	if pe.Field != "button.pressed.main_color" {
		t.Errorf("Field = %q", pe.Field)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindSignal, "signal"},
		{KindRender, "render"},
		{KindTheme, "theme"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{KindAlloc, "alloc"},
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
	err.Op = "object.Display.Refresh"
	if got, want := err.Error(), "panic in object.Display.Refresh: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{File: "theme.yaml", Field: "button.released.main_color", Got: "#zz"}
	want := "invalid button.released.main_color in theme.yaml: #zz"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *UIError
	handler := &testHandler{onError: func(err *UIError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	Report(&UIError{Op: "test.op", Kind: KindRender, Err: stderrors.New("x")})

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

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	old := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.cb", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := DefaultHandler
	defer SetHandler(old)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler_WritesRecord(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(&buf, false)

	h.HandleError(&UIError{Op: "theme.Load", Kind: KindTheme, Err: stderrors.New("missing file")})
	h.HandlePanic(&PanicError{Op: "demo.Update", Value: "bad"})

	out := buf.String()
	for _, want := range []string{"missing file", "theme.Load", "demo.Update", "bad"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*UIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *UIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
