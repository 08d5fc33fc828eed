package binary

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-instrument/errors"
	"github.com/wippyai/wasm-instrument/leb128"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		require.Equal(t, i, r.Position())
		b, err := r.ReadByte()
		require.NoError(t, err)
		require.Equal(t, want, b)
	}
	require.Equal(t, 3, r.Position())

	_, err := r.ReadByte()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderReadBytes(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))

	got, err := r.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got)
	require.Equal(t, 3, r.Position())

	_, err = r.ReadBytes(10)
	require.ErrorIs(t, err, leb128.ErrSourceExhausted)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderSequence(t *testing.T) {
	data := []byte{
		0xac, 0x02,       // u32 300
		0x82, 0x80, 0x00, // u32 2, padded
		0x7f,             // i32 -1
		0xc0, 0x00,       // i64 64
	}
	r := NewReader(bytes.NewReader(data))

	a, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, leb128.New[uint32](300, 2), a)

	start := r.Position()
	b, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, 2, start)
	require.Equal(t, leb128.New[uint32](2, 3), b)

	c, err := r.ReadS32()
	require.NoError(t, err)
	require.Equal(t, leb128.New[int32](-1, 1), c)

	d, err := r.ReadS64()
	require.NoError(t, err)
	require.Equal(t, leb128.New[int64](64, 2), d)

	require.Equal(t, len(data), r.Position())
}

func TestReaderErrorOffset(t *testing.T) {
	data := []byte{0x01, 0x02, 0xff, 0xff, 0xff, 0xff, 0x1f}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadBytes(2)
	require.NoError(t, err)

	_, err = r.ReadU32()
	require.ErrorIs(t, err, leb128.ErrWidthOverflow)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	require.True(t, e.HasOffset)
	require.Equal(t, 2, e.Offset)
	require.Contains(t, err.Error(), "at offset 2")
}

func TestReaderReset(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xac, 0x02}))
	first, err := r.ReadU32()
	require.NoError(t, err)

	require.NoError(t, r.Reset(0))
	again, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, first, again)

	other := NewReader(bytes.NewBuffer([]byte{0x00}))
	require.Error(t, other.Reset(0))
}

func TestReaderReadRemaining(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x01, 0x02}))
	_, err := r.ReadByte()
	require.NoError(t, err)

	rest, err := r.ReadRemaining()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, rest)

	buffered := NewReader(bytes.NewBuffer([]byte{0x03, 0x04}))
	rest, err = buffered.ReadRemaining()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x04}, rest)
}

func TestWriterWrite(t *testing.T) {
	w := NewWriter()
	w.Byte(0xaa)

	off, err := w.WriteU32(leb128.New[uint32](2, 3))
	require.NoError(t, err)
	require.Equal(t, 1, off)

	off, err = w.WriteS32(leb128.New[int32](-1, 0))
	require.NoError(t, err)
	require.Equal(t, 4, off)

	off, err = w.WriteS64(leb128.New[int64](64, 0))
	require.NoError(t, err)
	require.Equal(t, 5, off)

	w.WriteBytes([]byte{0xbb})
	require.Equal(t, []byte{0xaa, 0x82, 0x80, 0x00, 0x7f, 0xc0, 0x00, 0xbb}, w.Bytes())
	require.Equal(t, 8, w.Len())

	_, err = w.WriteU32(leb128.New[uint32](0, 6))
	require.ErrorIs(t, err, leb128.ErrPaddingTooLong)
	require.Equal(t, 8, w.Len())
}

func TestWriterPatch(t *testing.T) {
	t.Run("keeps size", func(t *testing.T) {
		w := WriterFrom([]byte{0xaa, 0x82, 0x80, 0x00, 0xbb})

		old, err := w.PatchU32(1, 300)
		require.NoError(t, err)
		require.Equal(t, leb128.New[uint32](2, 3), old)
		require.Equal(t, []byte{0xaa, 0xac, 0x82, 0x00, 0xbb}, w.Bytes())

		r := NewReader(bytes.NewReader(w.Bytes()[1:]))
		v, err := r.ReadU32()
		require.NoError(t, err)
		require.Equal(t, leb128.New[uint32](300, 3), v)
	})

	t.Run("shrinking value is padded", func(t *testing.T) {
		w := WriterFrom([]byte{0xe5, 0x8e, 0x26, 0x0b})

		_, err := w.PatchS32(0, -1)
		require.NoError(t, err)
		require.Equal(t, []byte{0xff, 0xff, 0x7f, 0x0b}, w.Bytes())
	})

	t.Run("signed 64", func(t *testing.T) {
		w := WriterFrom(append(leb128.EncodeS64(-1<<40), 0x0b))
		before := w.Len()

		old, err := w.PatchS64(0, 1<<40)
		require.NoError(t, err)
		require.Equal(t, int64(-1<<40), old.Value)
		require.Equal(t, before, w.Len())

		v, err := leb128.LoadS64(w.Bytes())
		require.NoError(t, err)
		require.Equal(t, int64(1<<40), v.Value)
		require.Equal(t, old.ByteCount, v.ByteCount)
	})

	t.Run("growing value fails", func(t *testing.T) {
		data := []byte{0x02, 0x0b}
		w := WriterFrom(data)

		_, err := w.PatchU32(0, 300)
		require.ErrorIs(t, err, &errors.Error{Phase: errors.PhasePatch, Kind: errors.KindSizeChange})
		require.Equal(t, []byte{0x02, 0x0b}, w.Bytes())
	})

	t.Run("out of bounds", func(t *testing.T) {
		w := WriterFrom([]byte{0x00})

		_, err := w.PatchU32(1, 0)
		require.ErrorIs(t, err, &errors.Error{Phase: errors.PhasePatch, Kind: errors.KindOutOfBounds})

		_, err = w.PatchU32(-1, 0)
		require.ErrorIs(t, err, &errors.Error{Phase: errors.PhasePatch, Kind: errors.KindOutOfBounds})
	})

	t.Run("malformed field", func(t *testing.T) {
		w := WriterFrom([]byte{0x00, 0x80, 0x80})

		_, err := w.PatchU32(1, 0)
		require.ErrorIs(t, err, leb128.ErrSourceExhausted)

		var e *errors.Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, 1, e.Offset)
	})
}
