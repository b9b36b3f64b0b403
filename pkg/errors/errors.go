// Package errors provides structured error reporting for embedui.
//
// Widget code reports problems that it cannot return to a caller (a dropped
// reentrant signal, a panic recovered during refresh) through a global
// [ErrorHandler]. The default handler logs with charmbracelet/log.
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
	// KindSignal indicates a signal that could not be delivered.
	KindSignal
	// KindRender indicates a drawing or refresh error.
	KindRender
	// KindTheme indicates a theme that could not be loaded.
	KindTheme
	// KindConfig indicates an invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindAlloc indicates a failed per-object allocation.
	KindAlloc
)

func (k ErrorKind) String() string {
	switch k {
	case KindSignal:
		return "signal"
	case KindRender:
		return "render"
	case KindTheme:
		return "theme"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindAlloc:
		return "alloc"
	default:
		return "unknown"
	}
}

// UIError represents a structured error.
type UIError struct {
	// Op is the operation that failed (e.g., "widgets.Button.Signal").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Object is the identifier of the object involved, if any.
	Object string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("%s [%s] object=%s: %v", e.Op, e.Kind, e.Object, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "object.Display.Refresh").
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

// ParseError represents a value in a theme or config file that could not be
// interpreted.
type ParseError struct {
	// File is the file being parsed.
	File string
	// Field is the dotted path of the offending field.
	Field string
	// Got is the raw value found.
	Got any
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("invalid %s in %s: %v", e.Field, e.File, e.Got)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Got)
}

// ErrorHandler receives errors reported by embedui.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
