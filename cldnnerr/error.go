// Package cldnnerr defines the closed error taxonomy shared across the
// compute-graph runtime.
package cldnnerr

import "fmt"

// Kind is one of the closed set of failure categories a caller-facing
// operation can fail with.
type Kind int

const (
	// InvalidArgument covers malformed descriptions, unknown input ids,
	// topology cycles, and incompatible layouts passed at the API boundary.
	InvalidArgument Kind = iota
	// UnsupportedConfiguration means no kernel candidate accepted the
	// lowered parameters.
	UnsupportedConfiguration
	// CompileError means the device rejected a kernel source.
	CompileError
	// ResourceExhausted means the allocator could not satisfy a request.
	ResourceExhausted
	// DeviceError means the device runtime failed during enqueue or wait.
	DeviceError
	// NotImplemented means a feature was requested but never wired for the
	// current device/layout.
	NotImplemented
	// NetworkNotImplemented means the primitive kind is recognized but has
	// no registered reference kernel to execute it.
	NetworkNotImplemented
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case UnsupportedConfiguration:
		return "UnsupportedConfiguration"
	case CompileError:
		return "CompileError"
	case ResourceExhausted:
		return "ResourceExhausted"
	case DeviceError:
		return "DeviceError"
	case NotImplemented:
		return "NotImplemented"
	case NetworkNotImplemented:
		return "NetworkNotImplemented"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned from every public API boundary function.
// It always names the offending primitive id when one is relevant.
type Error struct {
	Kind      Kind
	Primitive string // primitive id this error is about, if any
	Message   string
	Err       error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Primitive != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s (primitive %q): %v", e.Kind, e.Message, e.Primitive, e.Err)
		}
		return fmt.Sprintf("%s: %s (primitive %q)", e.Kind, e.Message, e.Primitive)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, cldnnerr.New(cldnnerr.InvalidArgument, "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, primitive, message string) *Error {
	return &Error{Kind: kind, Primitive: primitive, Message: message}
}

// Wrap builds an *Error around an existing cause.
func Wrap(kind Kind, primitive, message string, err error) *Error {
	return &Error{Kind: kind, Primitive: primitive, Message: message, Err: err}
}

// sentinels usable with errors.Is(err, cldnnerr.ErrInvalidArgument)
var (
	ErrInvalidArgument         = &Error{Kind: InvalidArgument}
	ErrUnsupportedConfig       = &Error{Kind: UnsupportedConfiguration}
	ErrCompile                 = &Error{Kind: CompileError}
	ErrResourceExhausted       = &Error{Kind: ResourceExhausted}
	ErrDevice                  = &Error{Kind: DeviceError}
	ErrNotImplemented          = &Error{Kind: NotImplemented}
	ErrNetworkNotImplemented   = &Error{Kind: NetworkNotImplemented}
)
