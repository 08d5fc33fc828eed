package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // bytes to integer
	PhaseEncode   Phase = "encode"   // integer to bytes
	PhasePatch    Phase = "patch"    // in-place rewrite of an encoded field
	PhaseGenerate Phase = "generate" // hook stub generation
	PhaseParse    Phase = "parse"    // command-line input parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow        Kind = "overflow"
	KindSourceExhausted Kind = "source_exhausted"
	KindPaddingTooLong  Kind = "padding_too_long"
	KindSink            Kind = "sink"
	KindSizeChange      Kind = "size_change"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindInvalidInput    Kind = "invalid_input"
	KindUnsupported     Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Width     string
	Detail    string
	Offset    int
	HasOffset bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Width != "" {
		b.WriteString(" (")
		b.WriteString(e.Width)
		b.WriteByte(')')
	}

	if e.HasOffset {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
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

// WithOffset returns a copy of e positioned at offset.
// An offset that is already set is treated as relative and shifted by offset.
func (e *Error) WithOffset(offset int) *Error {
	c := *e
	if c.HasOffset {
		c.Offset += offset
	} else {
		c.Offset = offset
		c.HasOffset = true
	}
	return &c
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

// Width sets the integer width name, e.g. "u32"
func (b *Builder) Width(w string) *Builder {
	b.err.Width = w
	return b
}

// At sets the byte offset
func (b *Builder) At(offset int) *Builder {
	b.err.Offset = offset
	b.err.HasOffset = true
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

// Overflow creates a width overflow error. byteIndex is the zero-based
// index of the byte that did not fit.
func Overflow(phase Phase, width string, byteIndex int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Width:  width,
		Detail: fmt.Sprintf("value too large for %s at byte %d", width, byteIndex),
		Value:  byteIndex,
	}
}

// SourceExhausted creates an end-of-input error after consumed bytes
func SourceExhausted(consumed int, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSourceExhausted,
		Detail: fmt.Sprintf("source ended after %d byte(s)", consumed),
		Value:  consumed,
		Cause:  cause,
	}
}

// PaddingTooLong creates an error for a requested byte count beyond the width's maximum
func PaddingTooLong(width string, byteCount, maxLen int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindPaddingTooLong,
		Width:  width,
		Detail: fmt.Sprintf("byte count %d exceeds maximum %d", byteCount, maxLen),
		Value:  byteCount,
	}
}

// Sink wraps a write failure of the byte sink
func Sink(width string, written int, cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindSink,
		Width:  width,
		Detail: fmt.Sprintf("write failed after %d byte(s)", written),
		Value:  written,
		Cause:  cause,
	}
}

// SizeChange creates an error for a patch that would resize the field
func SizeChange(width string, offset, have, need int) *Error {
	return &Error{
		Phase:     PhasePatch,
		Kind:      KindSizeChange,
		Width:     width,
		Offset:    offset,
		HasOffset: true,
		Detail:    fmt.Sprintf("field is %d byte(s), value needs %d", have, need),
		Value:     need,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
