package leb128_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-instrument/leb128"
)

// TestDecodeNoAlloc ensures the success path of decoding does not allocate.
func TestDecodeNoAlloc(t *testing.T) {
	t.Run("ReadU32", func(t *testing.T) {
		result := testing.Benchmark(BenchmarkReadU32)
		require.Zero(t, result.AllocsPerOp())
	})
	t.Run("ReadS32", func(t *testing.T) {
		result := testing.Benchmark(BenchmarkReadS32)
		require.Zero(t, result.AllocsPerOp())
	})
	t.Run("ReadS64", func(t *testing.T) {
		result := testing.Benchmark(BenchmarkReadS64)
		require.Zero(t, result.AllocsPerOp())
	})
}

func BenchmarkReadU32(b *testing.B) {
	b.ReportAllocs()
	data := []byte{0x80, 0x80, 0x80, 0x4f}
	r := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		_, err := leb128.ReadU32(r)
		if err != nil {
			b.Fatal(err)
		}
		r.Reset(data)
	}
}

func BenchmarkReadS32(b *testing.B) {
	b.ReportAllocs()
	data := []byte{0x80, 0x80, 0x80, 0xb1, 0x7f}
	r := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		_, err := leb128.ReadS32(r)
		if err != nil {
			b.Fatal(err)
		}
		r.Reset(data)
	}
}

func BenchmarkReadS64(b *testing.B) {
	b.ReportAllocs()
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}
	r := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		_, err := leb128.ReadS64(r)
		if err != nil {
			b.Fatal(err)
		}
		r.Reset(data)
	}
}

func BenchmarkWriteS64Padded(b *testing.B) {
	b.ReportAllocs()
	var buf bytes.Buffer
	v := leb128.New[int64](-1, 10)
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if _, err := leb128.WriteS64(&buf, v); err != nil {
			b.Fatal(err)
		}
	}
}
