// Package errors provides structured error handling for the motion library.
//
// Animation misconfiguration deliberately degrades to no-ops rather than
// failing, so most of what flows through here is diagnostic: recovered
// panics from user-supplied variant resolvers, rejected variant files,
// unit reconciliation that had to guess. Hosts install an [ErrorHandler]
// to surface these; the default logs to stderr.
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
	// KindResolve indicates a variant resolution failure.
	KindResolve
	// KindConvert indicates a unit or value conversion failure.
	KindConvert
	// KindConfig indicates a variant-file or transition configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolve:
		return "resolve"
	case KindConvert:
		return "convert"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion library.
type MotionError struct {
	// Op is the operation that failed (e.g., "motion.ParseVariants").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Variant is the variant label involved, if applicable.
	Variant string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("%s [%s] variant=%s: %v", e.Op, e.Kind, e.Variant, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "motion.ResolveVariant").
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

// ErrorHandler receives errors reported by the motion library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
