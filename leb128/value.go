package leb128

import "strconv"

// Integer is the set of payload types a Value can carry.
type Integer interface {
	~uint32 | ~int32 | ~int64
}

// Value pairs an integer with the number of bytes it occupies when encoded.
//
// When produced by decoding, ByteCount is the number of bytes consumed.
// When passed to an encoder, ByteCount is the minimum number of bytes to emit.
type Value[T Integer] struct {
	Value     T
	ByteCount int
}

// New returns a Value with an explicit byte count. No validation is done here.
func New[T Integer](v T, byteCount int) Value[T] {
	return Value[T]{Value: v, ByteCount: byteCount}
}

// Retag replaces the payload of v, possibly with another type, and keeps its
// byte count.
func Retag[T, U Integer](v Value[T], newValue U) Value[U] {
	return Value[U]{Value: newValue, ByteCount: v.ByteCount}
}

// With returns a copy of v carrying newValue and the same byte count.
func (v Value[T]) With(newValue T) Value[T] {
	return Value[T]{Value: newValue, ByteCount: v.ByteCount}
}

// Get returns the integer payload.
func (v Value[T]) Get() T {
	return v.Value
}

func (v Value[T]) String() string {
	return formatInt(v.Value) + " (" + strconv.Itoa(v.ByteCount) + " bytes)"
}

func formatInt[T Integer](x T) string {
	if x < 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}
