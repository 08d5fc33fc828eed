package leb128

import (
	"fmt"
	"strings"

	"github.com/wippyai/wasm-instrument/errors"
)

// Width identifies one of the supported integer widths.
type Width uint8

const (
	WidthU32 Width = iota + 1
	WidthS32
	WidthS64
)

// Bits returns the bit width.
func (w Width) Bits() uint {
	switch w {
	case WidthU32, WidthS32:
		return 32
	case WidthS64:
		return 64
	}
	return 0
}

// Signed reports whether the width is two's complement.
func (w Width) Signed() bool {
	return w == WidthS32 || w == WidthS64
}

// MaxLen returns the longest encoding the width accepts: ceil(bits/7).
func (w Width) MaxLen() int {
	return int((w.Bits() + 6) / 7)
}

func (w Width) String() string {
	switch w {
	case WidthU32:
		return "u32"
	case WidthS32:
		return "i32"
	case WidthS64:
		return "i64"
	}
	return fmt.Sprintf("width(%d)", uint8(w))
}

// ParseWidth accepts "u32", "i32"/"s32" and "i64"/"s64", case-insensitive.
func ParseWidth(s string) (Width, error) {
	switch strings.ToLower(s) {
	case "u32":
		return WidthU32, nil
	case "i32", "s32":
		return WidthS32, nil
	case "i64", "s64":
		return WidthS64, nil
	}
	return 0, errors.InvalidInput(errors.PhaseParse, fmt.Sprintf("unknown width %q (want u32, i32 or i64)", s))
}
