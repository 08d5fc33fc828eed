package leb128

import (
	"io"

	"github.com/wippyai/wasm-instrument/errors"
)

// decodeUnsigned reads one unsigned LEB128 integer of width w into a uint64.
// Bits above w.Bits() must be zero; they are checked before the group is merged.
func decodeUnsigned(r io.ByteReader, w Width) (uint64, int, error) {
	bits := w.Bits()
	maxLen := w.MaxLen()

	var result uint64
	var shift uint
	n := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, n, exhausted(n, err)
		}
		group := uint64(b & payloadMask)
		if shift+7 > bits && group>>(bits-shift) != 0 {
			return 0, n + 1, errors.Overflow(errors.PhaseDecode, w.String(), n)
		}
		result |= group << shift
		n++
		if b&continuationBit == 0 {
			return result, n, nil
		}
		if n == maxLen {
			return 0, n, errors.Overflow(errors.PhaseDecode, w.String(), n-1)
		}
		shift += 7
	}
}

// encodeUnsigned writes v using at least byteCount bytes. Once v is exhausted
// the remaining bytes are 0x80 filler, with a final 0x00.
func encodeUnsigned(bw io.ByteWriter, v uint64, byteCount int, w Width) (int, error) {
	if byteCount > w.MaxLen() {
		return 0, errors.PaddingTooLong(w.String(), byteCount, w.MaxLen())
	}
	n := 0
	for {
		b := byte(v & payloadMask)
		v >>= 7
		n++
		more := v != 0 || n < byteCount
		if more {
			b |= continuationBit
		}
		if err := bw.WriteByte(b); err != nil {
			return n - 1, errors.Sink(w.String(), n-1, err)
		}
		if !more {
			return n, nil
		}
	}
}

func minLenUnsigned(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}
