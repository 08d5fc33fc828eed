// Package binary provides position-aware reading and in-place patching of
// LEB128 fields inside a byte buffer.
//
// Reader tracks the byte offset of every value it decodes, so callers can
// remember where a field lives. Writer builds or wraps a buffer and can
// overwrite a previously encoded field with a new value without changing its
// size, which keeps every following byte where it was:
//
//	w := binary.WriterFrom(module)
//	old, err := w.PatchU32(offset, 4096)
//
// A patch fails with errors.KindSizeChange when the new value needs more bytes
// than the field holds.
package binary
