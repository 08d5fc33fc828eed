package binary

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-instrument/errors"
	"github.com/wippyai/wasm-instrument/leb128"
)

// Writer provides buffered writing and in-place patching of LEB128 fields.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new, empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// WriterFrom creates a Writer over data. The Writer takes ownership of data;
// patches modify it in place.
func WriterFrom(data []byte) *Writer {
	return &Writer{buf: bytes.NewBuffer(data)}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU32 writes v using at least v.ByteCount bytes and returns the offset
// the field was written at.
func (w *Writer) WriteU32(v leb128.Value[uint32]) (int, error) {
	return write(w, leb128.U32, v)
}

// WriteS32 writes v using at least v.ByteCount bytes and returns its offset.
func (w *Writer) WriteS32(v leb128.Value[int32]) (int, error) {
	return write(w, leb128.S32, v)
}

// WriteS64 writes v using at least v.ByteCount bytes and returns its offset.
func (w *Writer) WriteS64(v leb128.Value[int64]) (int, error) {
	return write(w, leb128.S64, v)
}

// PatchU32 overwrites the u32 field at offset with v, keeping the field's
// byte count. It returns the value that was there before.
func (w *Writer) PatchU32(offset int, v uint32) (leb128.Value[uint32], error) {
	return patch(w, leb128.U32, offset, v)
}

// PatchS32 overwrites the i32 field at offset with v, keeping its byte count.
func (w *Writer) PatchS32(offset int, v int32) (leb128.Value[int32], error) {
	return patch(w, leb128.S32, offset, v)
}

// PatchS64 overwrites the i64 field at offset with v, keeping its byte count.
func (w *Writer) PatchS64(offset int, v int64) (leb128.Value[int64], error) {
	return patch(w, leb128.S64, offset, v)
}

func write[T leb128.Integer](w *Writer, c leb128.Codec[T], v leb128.Value[T]) (int, error) {
	offset := w.buf.Len()
	if _, err := c.Encode(w.buf, v); err != nil {
		// bytes.Buffer never fails a write, so nothing was emitted.
		return offset, at(err, offset)
	}
	return offset, nil
}

func patch[T leb128.Integer](w *Writer, c leb128.Codec[T], offset int, v T) (leb128.Value[T], error) {
	data := w.buf.Bytes()
	if offset < 0 || offset >= len(data) {
		return leb128.Value[T]{}, errors.OutOfBounds(errors.PhasePatch, offset, len(data))
	}

	old, err := c.Decode(bytes.NewReader(data[offset:]))
	if err != nil {
		return old, at(err, offset)
	}
	if need := c.MinLen(v); need > old.ByteCount {
		return old, errors.SizeChange(c.Width().String(), offset, old.ByteCount, need)
	}

	field := &fieldWriter{dst: data[offset : offset+old.ByteCount]}
	if _, err := c.Encode(field, old.With(v)); err != nil {
		return old, at(err, offset)
	}

	if ce := Logger().Check(zap.DebugLevel, "patched field"); ce != nil {
		ce.Write(
			zap.Int("offset", offset),
			zap.Stringer("width", c.Width()),
			zap.Stringer("old", old),
			zap.Stringer("new", old.With(v)),
		)
	}
	return old, nil
}

// fieldWriter writes into a fixed window of an existing buffer.
type fieldWriter struct {
	dst []byte
	n   int
}

func (f *fieldWriter) WriteByte(b byte) error {
	if f.n == len(f.dst) {
		return errors.OutOfBounds(errors.PhasePatch, f.n, len(f.dst))
	}
	f.dst[f.n] = b
	f.n++
	return nil
}
