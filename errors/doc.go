// Package errors provides structured error types for the wasm-instrument library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the integer width involved, the byte offset when known,
// the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverflow).
//		Width("u32").
//		At(12).
//		Detail("group 0x%02x exceeds width", b).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseDecode, "i32", 5)
//	err := errors.SourceExhausted(2, io.ErrUnexpectedEOF)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so a bare &Error{Phase, Kind} works as a sentinel.
package errors
