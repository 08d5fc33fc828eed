package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-instrument/leb128"
)

func TestParseHex(t *testing.T) {
	for _, in := range []string{"ac 02", "0xac,0x02", "ac02", "AC 2"} {
		data, err := parseHex(in)
		require.NoError(t, err, in)
		require.Equal(t, []byte{0xac, 0x02}, data, in)
	}

	_, err := parseHex("zz")
	require.Error(t, err)
}

func TestFormatHex(t *testing.T) {
	require.Equal(t, "82 80 00", formatHex([]byte{0x82, 0x80, 0x00}))
	require.Equal(t, "", formatHex(nil))
}

func TestDecodeAll(t *testing.T) {
	values, err := decodeAll([]byte{0xac, 0x02, 0x82, 0x80, 0x00}, leb128.WidthU32)
	require.NoError(t, err)
	require.Equal(t, []decoded{{text: "300", byteCount: 2}, {text: "2", byteCount: 3}}, values)

	values, err = decodeAll([]byte{0x7f, 0x80}, leb128.WidthS64)
	require.ErrorIs(t, err, leb128.ErrSourceExhausted)
	require.Equal(t, []decoded{{text: "-1", byteCount: 1}}, values)
}

func TestEncode(t *testing.T) {
	data, err := encode("2", leb128.WidthU32, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x82, 0x80, 0x00}, data)

	data, err = encode("-1", leb128.WidthS64, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x7f}, data)

	data, err = encode("0x80000000", leb128.WidthS64, 0)
	require.NoError(t, err)
	require.Equal(t, leb128.EncodeS64(0x80000000), data)

	_, err = encode("-1", leb128.WidthU32, 0)
	require.Error(t, err)

	_, err = encode("1", leb128.WidthS32, 6)
	require.ErrorIs(t, err, leb128.ErrPaddingTooLong)
}

func TestPatch(t *testing.T) {
	data := []byte{0x0b, 0x82, 0x80, 0x00, 0x0b}

	old, err := patch(data, 1, "300", leb128.WidthU32)
	require.NoError(t, err)
	require.Equal(t, decoded{text: "2", byteCount: 3}, old)
	require.Equal(t, []byte{0x0b, 0xac, 0x82, 0x00, 0x0b}, data)

	_, err = patch(data, 1, "-5", leb128.WidthS32)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0b, 0xfb, 0xff, 0x7f, 0x0b}, data)

	_, err = patch(data, 0, "1000", leb128.WidthS64)
	require.Error(t, err)
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel(leb128.WidthU32)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("82 80 00")})
	require.NoError(t, m.err)
	require.Equal(t, "2 (3 bytes)", m.result)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Equal(t, leb128.WidthS32, widths[m.width])
	require.Equal(t, "2 (3 bytes)", m.result)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, stateEncode, m.state)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-1")})
	require.Equal(t, "7f (1 bytes)", m.result)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.Equal(t, "ff ff 7f (3 bytes)", m.result)
	require.Contains(t, m.View(), "Encode")
}
