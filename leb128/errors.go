package leb128

import (
	"io"

	"github.com/wippyai/wasm-instrument/errors"
)

// Sentinels for errors.Is. They match on phase and kind only, so any width
// or offset annotation on the returned error is ignored by the comparison.
var (
	// ErrWidthOverflow reports a well-formed sequence whose value does not fit the target width.
	ErrWidthOverflow = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOverflow}
	// ErrSourceExhausted reports a source that ended before a terminating byte.
	ErrSourceExhausted = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindSourceExhausted}
	// ErrPaddingTooLong reports a requested byte count the width cannot represent.
	ErrPaddingTooLong = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindPaddingTooLong}
)

const (
	continuationBit = 0x80
	payloadMask     = 0x7f
	signBit         = 0x40
)

func exhausted(consumed int, err error) error {
	if err == io.EOF && consumed > 0 {
		err = io.ErrUnexpectedEOF
	}
	return errors.SourceExhausted(consumed, err)
}
