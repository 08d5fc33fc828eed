package main

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/wippyai/wasm-instrument/binary"
	"github.com/wippyai/wasm-instrument/errors"
	"github.com/wippyai/wasm-instrument/leb128"
)

// decoded is a width-erased leb128.Value for display.
type decoded struct {
	text      string
	byteCount int
}

// parseHex accepts "ac 02", "0xac,0x02" and "ac02".
func parseHex(s string) ([]byte, error) {
	var b strings.Builder
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	}) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		if len(field)%2 == 1 {
			field = "0" + field
		}
		b.WriteString(field)
	}
	data, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "parse hex bytes")
	}
	return data, nil
}

func formatHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(parts, " ")
}

// decodeAll decodes consecutive values of one width until data is used up.
func decodeAll(data []byte, w leb128.Width) ([]decoded, error) {
	r := binary.NewReader(bytes.NewReader(data))
	var out []decoded
	for r.Position() < len(data) {
		d, err := decodeOne(r, w)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, nil
}

func decodeOne(r *binary.Reader, w leb128.Width) (decoded, error) {
	switch w {
	case leb128.WidthU32:
		v, err := r.ReadU32()
		return decoded{text: strconv.FormatUint(uint64(v.Value), 10), byteCount: v.ByteCount}, err
	case leb128.WidthS32:
		v, err := r.ReadS32()
		return decoded{text: strconv.FormatInt(int64(v.Value), 10), byteCount: v.ByteCount}, err
	case leb128.WidthS64:
		v, err := r.ReadS64()
		return decoded{text: strconv.FormatInt(v.Value, 10), byteCount: v.ByteCount}, err
	}
	return decoded{}, errors.Unsupported(errors.PhaseDecode, "width "+w.String())
}

// encode parses value for width w and encodes it with at least byteCount bytes.
func encode(value string, w leb128.Width, byteCount int) ([]byte, error) {
	out := binary.NewWriter()
	switch w {
	case leb128.WidthU32:
		v, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return nil, parseValueError(value, w, err)
		}
		if _, err := out.WriteU32(leb128.New(uint32(v), byteCount)); err != nil {
			return nil, err
		}
	case leb128.WidthS32:
		v, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return nil, parseValueError(value, w, err)
		}
		if _, err := out.WriteS32(leb128.New(int32(v), byteCount)); err != nil {
			return nil, err
		}
	case leb128.WidthS64:
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return nil, parseValueError(value, w, err)
		}
		if _, err := out.WriteS64(leb128.New(v, byteCount)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "width "+w.String())
	}
	return out.Bytes(), nil
}

// patch overwrites the field at offset in data and returns the previous value.
func patch(data []byte, offset int, value string, w leb128.Width) (decoded, error) {
	out := binary.WriterFrom(data)
	switch w {
	case leb128.WidthU32:
		v, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return decoded{}, parseValueError(value, w, err)
		}
		old, err := out.PatchU32(offset, uint32(v))
		return decoded{text: strconv.FormatUint(uint64(old.Value), 10), byteCount: old.ByteCount}, err
	case leb128.WidthS32:
		v, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return decoded{}, parseValueError(value, w, err)
		}
		old, err := out.PatchS32(offset, int32(v))
		return decoded{text: strconv.FormatInt(int64(old.Value), 10), byteCount: old.ByteCount}, err
	case leb128.WidthS64:
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return decoded{}, parseValueError(value, w, err)
		}
		old, err := out.PatchS64(offset, v)
		return decoded{text: strconv.FormatInt(old.Value, 10), byteCount: old.ByteCount}, err
	}
	return decoded{}, errors.Unsupported(errors.PhasePatch, "width "+w.String())
}

func parseValueError(value string, w leb128.Width, err error) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Width(w.String()).
		Value(value).
		Detail("%q is not a valid %s", value, w).
		Cause(err).
		Build()
}
