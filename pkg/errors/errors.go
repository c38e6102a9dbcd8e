// Package errors provides structured error handling for uitree.
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
	// KindArgument indicates a caller passed a value outside an operation's domain.
	KindArgument
	// KindInvariant indicates a broken internal invariant.
	KindInvariant
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindParsing indicates a stylesheet or scene parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindInvariant:
		return "invariant"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UITreeError represents a structured error raised by an element or style operation.
type UITreeError struct {
	// Op is the operation that failed (e.g., "style.SetProperty").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element is the element handle in string form, if applicable.
	Element string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UITreeError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UITreeError) Unwrap() error {
	return e.Err
}

// ArgumentError reports a value outside the accepted domain of a parameter.
type ArgumentError struct {
	// Op is the operation that rejected the argument.
	Op string
	// Param names the offending parameter.
	Param string
	// Value is the rejected value.
	Value any
	// Reason optionally describes the accepted domain.
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s %v", e.Op, e.Param, e.Value)
}

// InvariantError is raised by Assert when a structural invariant does not hold.
type InvariantError struct {
	// Message describes the broken invariant.
	Message string
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Message
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.ReadParallel").
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

// ErrorHandler receives errors reported by uitree.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UITreeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
