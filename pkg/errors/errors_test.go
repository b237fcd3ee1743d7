package errors

import (
	"fmt"
	"testing"
)

type recordingHandler struct {
	errs   []*Error
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *Error)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestKindOfUnwrapsChain(t *testing.T) {
	inner := Newf("layout.Constraints.Validate", KindConstraint, "min exceeds max")
	wrapped := fmt.Errorf("frame 7: %w", inner)

	if got := KindOf(wrapped); got != KindConstraint {
		t.Errorf("KindOf = %v, want KindConstraint", got)
	}
	if !IsInvalidConstraint(wrapped) {
		t.Error("IsInvalidConstraint = false for wrapped constraint error")
	}
	if IsCyclicDependency(wrapped) {
		t.Error("IsCyclicDependency = true for constraint error")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(fmt.Errorf("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want KindUnknown", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want KindUnknown", got)
	}
}

func TestErrorStringIncludesOpAndKind(t *testing.T) {
	err := Newf("widgets.Button.Paint", KindPaint, "boom")
	got := err.Error()
	want := "widgets.Button.Paint [paint]: boom"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReportFillsTimestamp(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&Error{Op: "x", Kind: KindTree})
	if len(handler.errs) != 1 {
		t.Fatalf("handled %d errors, want 1", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report left Timestamp zero")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("errors_test.op")
		panic("boom")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("handled %d panics, want 1", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "errors_test.op" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("panic captured no stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&recordingHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("errors_test.op", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
