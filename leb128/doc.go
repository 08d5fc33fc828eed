// Package leb128 reads and writes LEB128 variable-length integers with an
// explicit byte length attached to every value.
//
// A decoded Value records how many bytes it occupied on the wire. Encoding a
// Value emits at least that many bytes, padding with continuation-flagged
// filler groups when the value itself needs fewer. This makes it possible to
// decode an integer, change it, and write it back without moving any of the
// bytes that follow it:
//
//	v, err := leb128.ReadU32(r)      // e.g. [0x82 0x80 0x00] -> 2 (3 bytes)
//	patched := v.With(300)
//	n, err := leb128.WriteU32(w, patched) // [0xac 0x82 0x00], n == 3
//
// # Widths
//
// Three widths are supported, each behind the Codec interface:
//
//	U32  unsigned 32-bit, at most 5 bytes
//	S32  signed 32-bit, at most 5 bytes
//	S64  signed 64-bit, at most 10 bytes
//
// # Errors
//
// Decoding fails with ErrSourceExhausted when the source ends inside a
// sequence and with ErrWidthOverflow when the bytes describe a value outside
// the target range. Encoding fails with ErrPaddingTooLong when asked for more
// bytes than the width allows, since the decoder would reject the result.
// Match them with errors.Is.
package leb128
