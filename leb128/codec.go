package leb128

import (
	"bytes"
	"io"
)

// Codec reads and writes length-tagged integers of a single width.
type Codec[T Integer] interface {
	// Width returns the integer width handled by the codec.
	Width() Width
	// Decode reads one integer. ByteCount of the result is the number of bytes consumed.
	Decode(r io.ByteReader) (Value[T], error)
	// Encode writes v.Value using at least v.ByteCount bytes and returns the
	// number of bytes written: max(MinLen(v.Value), v.ByteCount).
	Encode(w io.ByteWriter, v Value[T]) (int, error)
	// MinLen returns the length of the shortest encoding of v.
	MinLen(v T) int
}

var (
	// U32 is the unsigned 32-bit codec.
	U32 Codec[uint32] = u32Codec{}
	// S32 is the signed 32-bit codec.
	S32 Codec[int32] = s32Codec{}
	// S64 is the signed 64-bit codec.
	S64 Codec[int64] = s64Codec{}
)

type u32Codec struct{}

func (u32Codec) Width() Width { return WidthU32 }

func (u32Codec) Decode(r io.ByteReader) (Value[uint32], error) {
	v, n, err := decodeUnsigned(r, WidthU32)
	if err != nil {
		logDecodeFailure(WidthU32, n, err)
		return Value[uint32]{}, err
	}
	return Value[uint32]{Value: uint32(v), ByteCount: n}, nil
}

func (u32Codec) Encode(w io.ByteWriter, v Value[uint32]) (int, error) {
	return encodeUnsigned(w, uint64(v.Value), v.ByteCount, WidthU32)
}

func (u32Codec) MinLen(v uint32) int { return minLenUnsigned(uint64(v)) }

type s32Codec struct{}

func (s32Codec) Width() Width { return WidthS32 }

func (s32Codec) Decode(r io.ByteReader) (Value[int32], error) {
	v, n, err := decodeSigned(r, WidthS32)
	if err != nil {
		logDecodeFailure(WidthS32, n, err)
		return Value[int32]{}, err
	}
	return Value[int32]{Value: int32(v), ByteCount: n}, nil
}

func (s32Codec) Encode(w io.ByteWriter, v Value[int32]) (int, error) {
	return encodeSigned(w, int64(v.Value), v.ByteCount, WidthS32)
}

func (s32Codec) MinLen(v int32) int { return minLenSigned(int64(v)) }

type s64Codec struct{}

func (s64Codec) Width() Width { return WidthS64 }

func (s64Codec) Decode(r io.ByteReader) (Value[int64], error) {
	v, n, err := decodeSigned(r, WidthS64)
	if err != nil {
		logDecodeFailure(WidthS64, n, err)
		return Value[int64]{}, err
	}
	return Value[int64]{Value: v, ByteCount: n}, nil
}

func (s64Codec) Encode(w io.ByteWriter, v Value[int64]) (int, error) {
	return encodeSigned(w, v.Value, v.ByteCount, WidthS64)
}

func (s64Codec) MinLen(v int64) int { return minLenSigned(v) }

// ReadU32 reads an unsigned 32-bit LEB128 value.
func ReadU32(r io.ByteReader) (Value[uint32], error) { return U32.Decode(r) }

// ReadS32 reads a signed 32-bit LEB128 value.
func ReadS32(r io.ByteReader) (Value[int32], error) { return S32.Decode(r) }

// ReadS64 reads a signed 64-bit LEB128 value.
func ReadS64(r io.ByteReader) (Value[int64], error) { return S64.Decode(r) }

// WriteU32 writes v using at least v.ByteCount bytes.
func WriteU32(w io.ByteWriter, v Value[uint32]) (int, error) { return U32.Encode(w, v) }

// WriteS32 writes v using at least v.ByteCount bytes.
func WriteS32(w io.ByteWriter, v Value[int32]) (int, error) { return S32.Encode(w, v) }

// WriteS64 writes v using at least v.ByteCount bytes.
func WriteS64(w io.ByteWriter, v Value[int64]) (int, error) { return S64.Encode(w, v) }

// LoadU32 decodes a value from the start of data.
func LoadU32(data []byte) (Value[uint32], error) { return U32.Decode(bytes.NewReader(data)) }

// LoadS32 decodes a value from the start of data.
func LoadS32(data []byte) (Value[int32], error) { return S32.Decode(bytes.NewReader(data)) }

// LoadS64 decodes a value from the start of data.
func LoadS64(data []byte) (Value[int64], error) { return S64.Decode(bytes.NewReader(data)) }

// AppendU32 appends the encoding of v to dst.
func AppendU32(dst []byte, v Value[uint32]) ([]byte, error) { return appendValue(dst, U32, v) }

// AppendS32 appends the encoding of v to dst.
func AppendS32(dst []byte, v Value[int32]) ([]byte, error) { return appendValue(dst, S32, v) }

// AppendS64 appends the encoding of v to dst.
func AppendS64(dst []byte, v Value[int64]) ([]byte, error) { return appendValue(dst, S64, v) }

// EncodeU32 returns the canonical encoding of v.
func EncodeU32(v uint32) []byte { return mustEncode(U32, v) }

// EncodeS32 returns the canonical encoding of v.
func EncodeS32(v int32) []byte { return mustEncode(S32, v) }

// EncodeS64 returns the canonical encoding of v.
func EncodeS64(v int64) []byte { return mustEncode(S64, v) }

// MinLenU32 returns the length of the shortest encoding of v.
func MinLenU32(v uint32) int { return U32.MinLen(v) }

// MinLenS32 returns the length of the shortest encoding of v.
func MinLenS32(v int32) int { return S32.MinLen(v) }

// MinLenS64 returns the length of the shortest encoding of v.
func MinLenS64(v int64) int { return S64.MinLen(v) }

type sliceWriter struct {
	buf []byte
}

func (s *sliceWriter) WriteByte(b byte) error {
	s.buf = append(s.buf, b)
	return nil
}

func appendValue[T Integer](dst []byte, c Codec[T], v Value[T]) ([]byte, error) {
	sw := &sliceWriter{buf: dst}
	if _, err := c.Encode(sw, v); err != nil {
		return dst, err
	}
	return sw.buf, nil
}

// mustEncode cannot fail: a zero byte count is always within MaxLen and
// sliceWriter never errors.
func mustEncode[T Integer](c Codec[T], v T) []byte {
	buf, _ := appendValue(make([]byte, 0, c.Width().MaxLen()), c, Value[T]{Value: v})
	return buf
}
