package packstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeMarker(t *testing.T, m Marker) []byte {
	t.Helper()
	var buf bytes.Buffer
	n, err := m.Encode(&buf)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	return buf.Bytes()
}

func TestMarkerRoundTrip(t *testing.T) {
	markers := []Marker{
		{Type: Null},
		{Type: True},
		{Type: False},
		{Type: Float64},
		{Type: Int8}, {Type: Int16}, {Type: Int32}, {Type: Int64},
		{Type: Bytes8}, {Type: Bytes16}, {Type: Bytes32},
		{Type: String8}, {Type: String16}, {Type: String32},
		{Type: List8}, {Type: List16}, {Type: List32},
		{Type: Dictionary8}, {Type: Dictionary16}, {Type: Dictionary32},
		PlusTinyIntMarker(0x00),
		PlusTinyIntMarker(0x2A),
		PlusTinyIntMarker(0x7F),
		MinusTinyIntMarker(0xF0),
		MinusTinyIntMarker(0xFF),
		TinyStringMarker(0), TinyStringMarker(15),
		TinyListMarker(0), TinyListMarker(15),
		TinyDictionaryMarker(0), TinyDictionaryMarker(15),
		StructureMarker(0, 0x00),
		StructureMarker(3, 0x4E),
		StructureMarker(15, 0xFF),
	}

	for _, m := range markers {
		t.Run(m.String(), func(t *testing.T) {
			encoded := encodeMarker(t, m)
			got, err := DecodeMarker(bytes.NewReader(encoded))
			require.NoError(t, err)
			assert.Equal(t, m, got)
		})
	}
}

func TestMarkerEncodedBytes(t *testing.T) {
	cases := []struct {
		marker Marker
		want   []byte
	}{
		{Marker{Type: Null}, []byte{0xC0}},
		{Marker{Type: Float64}, []byte{0xC1}},
		{Marker{Type: True}, []byte{0xC2}},
		{Marker{Type: False}, []byte{0xC3}},
		{TinyStringMarker(5), []byte{0x85}},
		{TinyListMarker(1), []byte{0x91}},
		{TinyDictionaryMarker(1), []byte{0xA1}},
		{StructureMarker(3, 0x4E), []byte{0xB3, 0x4E}},
		{PlusTinyIntMarker(0x2A), []byte{0x2A}},
		{MinusTinyIntMarker(0xFF), []byte{0xFF}},
		{Marker{Type: Int16}, []byte{0xC9}},
		{Marker{Type: Dictionary32}, []byte{0xDA}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, encodeMarker(t, tc.marker), "marker %s", tc.marker)
	}
}

// TestMarkerDecodeTotal sweeps all 256 first bytes: every byte either
// classifies into exactly one marker class or fails with
// UnknownMarkerByteError.
func TestMarkerDecodeTotal(t *testing.T) {
	unknown := map[byte]bool{
		0xC4: true, 0xC5: true, 0xC6: true, 0xC7: true, 0xCF: true,
		0xD3: true, 0xD7: true, 0xDB: true, 0xDC: true, 0xDD: true,
		0xDE: true, 0xDF: true,
	}
	for b := 0xE0; b <= 0xEF; b++ {
		unknown[byte(b)] = true
	}

	for b := 0; b <= 0xFF; b++ {
		// Structure markers consume a tag byte; feed one along.
		input := []byte{byte(b), 0x4E}
		m, err := DecodeMarker(bytes.NewReader(input))
		if unknown[byte(b)] {
			require.Error(t, err, "byte 0x%02X", b)
			assert.Equal(t, UnknownMarkerByteError(byte(b)), err)
			continue
		}
		require.NoError(t, err, "byte 0x%02X", b)

		switch {
		case b <= 0x7F:
			assert.Equal(t, PlusTinyIntMarker(byte(b)), m)
		case b >= 0xF0:
			assert.Equal(t, MinusTinyIntMarker(byte(b)), m)
		case b >= 0x80 && b <= 0x8F:
			assert.Equal(t, TinyStringMarker(b&0x0F), m)
		case b >= 0x90 && b <= 0x9F:
			assert.Equal(t, TinyListMarker(b&0x0F), m)
		case b >= 0xA0 && b <= 0xAF:
			assert.Equal(t, TinyDictionaryMarker(b&0x0F), m)
		case b >= 0xB0 && b <= 0xBF:
			assert.Equal(t, StructureMarker(b&0x0F, 0x4E), m)
		default:
			assert.Equal(t, MarkerType(b), m.Type)
		}
	}
}

func TestMarkerDecodeUnknownByte(t *testing.T) {
	_, err := DecodeMarker(bytes.NewReader([]byte{0xD7}))
	require.Error(t, err)
	assert.Equal(t, UnknownMarkerByteError(0xD7), err)
	assert.Contains(t, err.Error(), "0xD7")
}

func TestMarkerDecodeEmptyInput(t *testing.T) {
	_, err := DecodeMarker(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestMarkerDecodeStructureMissingTag(t *testing.T) {
	_, err := DecodeMarker(bytes.NewReader([]byte{0xB3}))
	require.Error(t, err)
}
