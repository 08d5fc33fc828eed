package binary

import (
	"bytes"
	"io"

	"github.com/wippyai/wasm-instrument/errors"
	"github.com/wippyai/wasm-instrument/leb128"
)

// Reader wraps an io.ByteReader with position tracking and LEB128 read methods.
type Reader struct {
	r   io.ByteReader
	pos int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Reset seeks to the given position. Only works with bytes.Reader.
func (r *Reader) Reset(pos int) error {
	if br, ok := r.r.(*bytes.Reader); ok {
		_, err := br.Seek(int64(pos), io.SeekStart)
		if err != nil {
			return err
		}
		r.pos = pos
		return nil
	}
	return errors.Unsupported(errors.PhaseDecode, "Reset not supported on this reader type")
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.SourceExhausted(i, err).WithOffset(r.pos - i)
		}
		buf[i] = b
	}
	return buf, nil
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
// On error the returned error carries the offset where the field starts.
func (r *Reader) ReadU32() (leb128.Value[uint32], error) {
	start := r.pos
	v, err := leb128.ReadU32(r)
	return v, at(err, start)
}

// ReadS32 reads a signed LEB128 encoded int32.
func (r *Reader) ReadS32() (leb128.Value[int32], error) {
	start := r.pos
	v, err := leb128.ReadS32(r)
	return v, at(err, start)
}

// ReadS64 reads a signed LEB128 encoded int64.
func (r *Reader) ReadS64() (leb128.Value[int64], error) {
	start := r.pos
	v, err := leb128.ReadS64(r)
	return v, at(err, start)
}

// ReadRemaining reads all remaining bytes from the reader.
func (r *Reader) ReadRemaining() ([]byte, error) {
	if br, ok := r.r.(*bytes.Reader); ok {
		return r.ReadBytes(br.Len())
	}
	var buf bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		buf.WriteByte(b)
	}
	return buf.Bytes(), nil
}

func at(err error, offset int) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errors.Error); ok {
		return e.WithOffset(offset)
	}
	return err
}
