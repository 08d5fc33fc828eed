// Package wasminstrument provides the integer-level building blocks for
// rewriting WebAssembly binaries in place.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasminstrument/      Root package (documentation only)
//	├── leb128/          Length-tagged LEB128 codec for u32, i32 and i64
//	├── binary/          Position-tracking reader and in-place field patching
//	├── hookgen/         JavaScript hook stub generation for instrumented instructions
//	├── errors/          Structured error types for debugging
//	└── cmd/leb128/      Command-line decoder, encoder and patcher with a TUI
//
// # Quick Start
//
// Decode a field, then overwrite it without moving anything after it:
//
//	v, err := leb128.LoadU32(data[off:])     // value and its byte count
//	w := binary.WriterFrom(data)
//	old, err := w.PatchU32(off, v.Value+1)   // same byte count as before
//
// Encode with a fixed width so the field can be patched later:
//
//	n, err := leb128.WriteS32(buf, leb128.New[int32](0, 5))
//
// # Logging
//
// The leb128 and binary packages log through zap. Both default to a no-op
// logger; install one with SetLogger before use.
package wasminstrument
