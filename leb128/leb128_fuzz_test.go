package leb128_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/wasm-instrument/leb128"
)

// FuzzLoadS64 checks that any accepted input re-encodes to the same bytes at
// the decoded byte count.
func FuzzLoadS64(f *testing.F) {
	f.Add([]byte{0x7f})
	f.Add([]byte{0xff, 0xff, 0x7f})
	f.Add([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f})
	f.Add([]byte{0x80})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := leb128.LoadS64(data)
		if err != nil {
			return
		}
		var buf bytes.Buffer
		n, err := leb128.WriteS64(&buf, v)
		if err != nil {
			t.Fatalf("re-encode %v: %v", v, err)
		}
		if n != v.ByteCount || !bytes.Equal(buf.Bytes(), data[:n]) {
			t.Fatalf("re-encode %v = %x, want %x", v, buf.Bytes(), data[:v.ByteCount])
		}
	})
}

func FuzzLoadU32(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x82, 0x80, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := leb128.LoadU32(data)
		if err != nil {
			return
		}
		out, err := leb128.AppendU32(nil, v)
		if err != nil {
			t.Fatalf("re-encode %v: %v", v, err)
		}
		if !bytes.Equal(out, data[:v.ByteCount]) {
			t.Fatalf("re-encode %v = %x, want %x", v, out, data[:v.ByteCount])
		}
	})
}
