// Package errors provides structured error types for the charset-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Recoverable conversion conditions (unmappable input, malformed
// input, buffer overflow) are NOT errors: they are returned as Outcome codes
// by the converter package. This package covers the genuinely exceptional
// cases: unknown encoding names, nil or closed handles, bad buffer bounds,
// oversized substitutes.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseOpen, errors.KindUnsupportedCharset).
//		Encoding("X-BOGUS").
//		Detail("no codec for alias").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedCharset("X-BOGUS")
//	err := errors.ClosedHandle(errors.PhaseEncode)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
