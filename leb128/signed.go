package leb128

import (
	"io"

	"github.com/wippyai/wasm-instrument/errors"
)

// decodeSigned reads one signed LEB128 integer of width w into an int64.
// In the group that reaches the sign bit of w, every bit from the sign bit
// upward must repeat it; this is checked before the group is merged.
func decodeSigned(r io.ByteReader, w Width) (int64, int, error) {
	bits := w.Bits()
	maxLen := w.MaxLen()

	var result int64
	var shift uint
	var b byte
	var err error
	n := 0
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, n, exhausted(n, err)
		}
		group := int64(b & payloadMask)
		if shift+7 >= bits {
			keep := bits - 1 - shift
			rest := group >> keep
			if rest != 0 && rest != payloadMask>>keep {
				return 0, n + 1, errors.Overflow(errors.PhaseDecode, w.String(), n)
			}
		}
		result |= group << shift
		shift += 7
		n++
		if b&continuationBit == 0 {
			break
		}
		if n == maxLen {
			return 0, n, errors.Overflow(errors.PhaseDecode, w.String(), n-1)
		}
	}

	// Sign extend
	if shift < 64 && b&signBit != 0 {
		result |= ^int64(0) << shift
	}
	return result, n, nil
}

// encodeSigned writes v using at least byteCount bytes. The remainder is
// shifted arithmetically, so it settles at 0 or -1; padding repeats that
// pattern as 0x80 or 0xff filler groups.
func encodeSigned(bw io.ByteWriter, v int64, byteCount int, w Width) (int, error) {
	if byteCount > w.MaxLen() {
		return 0, errors.PaddingTooLong(w.String(), byteCount, w.MaxLen())
	}
	n := 0
	for {
		b := byte(v & payloadMask)
		v >>= 7
		n++
		done := (v == 0 && b&signBit == 0) || (v == -1 && b&signBit != 0)
		more := !done || n < byteCount
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

func minLenSigned(v int64) int {
	n := 1
	for {
		b := v & payloadMask
		v >>= 7
		if (v == 0 && b&signBit == 0) || (v == -1 && b&signBit != 0) {
			return n
		}
		n++
	}
}
