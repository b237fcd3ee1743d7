// Package errors provides structured error handling for the Lumina toolkit.
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
	// KindConstraint indicates an invalid layout constraint (min > max).
	KindConstraint
	// KindCycle indicates a cyclic computed-cell dependency.
	KindCycle
	// KindDispose indicates a use of a disposed cell or widget.
	KindDispose
	// KindTree indicates a malformed widget-tree operation.
	KindTree
	// KindLayout indicates a failure inside a measure or arrange pass.
	KindLayout
	// KindPaint indicates a failure inside a paint walk.
	KindPaint
	// KindTheme indicates a theme-loading or resolution error.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindCycle:
		return "cycle"
	case KindDispose:
		return "dispose"
	case KindTree:
		return "tree"
	case KindLayout:
		return "layout"
	case KindPaint:
		return "paint"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "layout.Widget.AppendChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the id of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a structured error.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs a structured error from a format string.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// KindOf extracts the ErrorKind from an error chain.
// Returns KindUnknown for nil or unstructured errors.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// IsInvalidConstraint reports whether err is a constraint-validation failure.
func IsInvalidConstraint(err error) bool {
	return KindOf(err) == KindConstraint
}

// IsCyclicDependency reports whether err is a rejected dependency cycle.
func IsCyclicDependency(err error) bool {
	return KindOf(err) == KindCycle
}

// IsUseAfterDispose reports whether err is a use of a disposed object.
func IsUseAfterDispose(err error) bool {
	return KindOf(err) == KindDispose
}

// IsMalformedTreeOperation reports whether err is an invalid tree mutation.
func IsMalformedTreeOperation(err error) bool {
	return KindOf(err) == KindTree
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.RunFrame").
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

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
