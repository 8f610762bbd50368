package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the converter lifecycle the error occurred
type Phase string

const (
	PhaseOpen     Phase = "open"     // name resolution and handle creation
	PhaseEncode   Phase = "encode"   // UTF-16 to bytes
	PhaseDecode   Phase = "decode"   // bytes to UTF-16
	PhaseFlush    Phase = "flush"    // shift-state drain
	PhaseCallback Phase = "callback" // policy / substitute installation
	PhaseClose    Phase = "close"    // handle teardown
	PhaseProbe    Phase = "probe"    // canEncode and metric queries
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedCharset  Kind = "unsupported_charset"
	KindInvalidArgument     Kind = "invalid_argument"
	KindClosedHandle        Kind = "closed_handle"
	KindOversizedSubstitute Kind = "oversized_substitute"
	KindBufferBounds        Kind = "buffer_bounds"
	KindInternal            Kind = "internal"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Encoding != "" {
		b.WriteString(" encoding ")
		b.WriteString(e.Encoding)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Encoding sets the encoding name involved
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedCharset creates an unknown-encoding error
func UnsupportedCharset(name string) *Error {
	return &Error{
		Phase:    PhaseOpen,
		Kind:     KindUnsupportedCharset,
		Encoding: name,
		Detail:   fmt.Sprintf("no codec for %q", name),
	}
}

// ClosedHandle creates a use-after-close error
func ClosedHandle(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosedHandle,
		Detail: "operation on closed converter handle",
	}
}

// NilHandle creates a nil-handle error
func NilHandle(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: "nil converter handle",
	}
}

// OversizedSubstitute creates an error for a substitute exceeding its bound
func OversizedSubstitute(got, limit int) *Error {
	return &Error{
		Phase:  PhaseCallback,
		Kind:   KindOversizedSubstitute,
		Detail: fmt.Sprintf("substitute length %d exceeds limit %d", got, limit),
		Value:  got,
	}
}

// BufferBounds creates an error for out-of-range buffer limits
func BufferBounds(phase Phase, limit, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferBounds,
		Detail: fmt.Sprintf("limit %d out of range for buffer of length %d", limit, length),
		Value:  limit,
	}
}

// Internal creates an error for unexpected engine conditions
func Internal(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInternal,
		Detail: "unexpected codec engine condition",
		Cause:  cause,
	}
}
