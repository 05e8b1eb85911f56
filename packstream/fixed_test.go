package packstream

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeInt(t *testing.T, v int64) []byte {
	t.Helper()
	var buf bytes.Buffer
	n, err := EncodeInt(&buf, v)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	return buf.Bytes()
}

func TestEncodeIntPicksSmallestClass(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{42, []byte{0x2A}},
		{127, []byte{0x7F}},
		{-1, []byte{0xFF}},
		{-16, []byte{0xF0}},
		{-17, []byte{0xC8, 0xEF}},
		{-128, []byte{0xC8, 0x80}},
		{128, []byte{0xC9, 0x00, 0x80}},
		{-129, []byte{0xC9, 0xFF, 0x7F}},
		{32767, []byte{0xC9, 0x7F, 0xFF}},
		{-32768, []byte{0xC9, 0x80, 0x00}},
		{32768, []byte{0xCA, 0x00, 0x00, 0x80, 0x00}},
		{-32769, []byte{0xCA, 0xFF, 0xFF, 0x7F, 0xFF}},
		{math.MaxInt32, []byte{0xCA, 0x7F, 0xFF, 0xFF, 0xFF}},
		{math.MinInt32, []byte{0xCA, 0x80, 0x00, 0x00, 0x00}},
		{math.MaxInt32 + 1, []byte{0xCB, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00}},
		{math.MaxInt64, []byte{0xCB, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{math.MinInt64, []byte{0xCB, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, encodeInt(t, tc.value), "value %d", tc.value)
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 15, 16, 42, 127, 128, -15, -16, -17, -127, -128, -129,
		255, 256, 32767, 32768, -32768, -32769,
		443928, 49448443, -2700392,
		math.MaxInt32, math.MinInt32, int64(math.MaxInt32) + 1,
		42334388282948, math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		got, err := DecodeInt(bytes.NewReader(encodeInt(t, v)))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

// TestIntDecodeWidensAnyClass checks that decode accepts every integer
// class for the same value: decode is deliberately non-injective.
func TestIntDecodeWidensAnyClass(t *testing.T) {
	encodings := [][]byte{
		{0xFF},                                                 // MinusTinyInt
		{0xC8, 0xFF},                                           // Int8
		{0xC9, 0xFF, 0xFF},                                     // Int16
		{0xCA, 0xFF, 0xFF, 0xFF, 0xFF},                         // Int32
		{0xCB, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, // Int64
	}
	for _, enc := range encodings {
		got, err := DecodeInt(bytes.NewReader(enc))
		require.NoError(t, err)
		assert.Equal(t, int64(-1), got, "encoding %X", enc)
	}
}

// TestIntReencodeIsMinimal: decoding a wide encoding and re-encoding
// yields the minimal form, not the original bytes.
func TestIntReencodeIsMinimal(t *testing.T) {
	got, err := DecodeInt(bytes.NewReader([]byte{0xC9, 0xFF, 0xFF}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, encodeInt(t, got))
}

func TestMinusTinyIntIsTwosComplement(t *testing.T) {
	for i := int64(-16); i < 0; i++ {
		encoded := encodeInt(t, i)
		require.Len(t, encoded, 1)
		assert.Equal(t, byte(0xF0)|byte(i+16), encoded[0])
	}
}

func TestDecodeIntRejectsNonIntegerMarker(t *testing.T) {
	_, err := DecodeInt(bytes.NewReader([]byte{0x85}))
	require.Error(t, err)
	var unexpected *UnexpectedMarkerError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, TinyString, unexpected.Marker.Type)
}

func TestInt32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 127, -16, -17, 128, 32767, 32768, math.MaxInt32, math.MinInt32}
	for _, v := range values {
		var buf bytes.Buffer
		_, err := EncodeInt32(&buf, v)
		require.NoError(t, err)
		got, err := DecodeInt32(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecodeInt32RejectsInt64Marker(t *testing.T) {
	var buf bytes.Buffer
	_, err := EncodeInt(&buf, math.MaxInt64)
	require.NoError(t, err)
	_, err = DecodeInt32(bytes.NewReader(buf.Bytes()))
	var unexpected *UnexpectedMarkerError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, Int64, unexpected.Marker.Type)
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, 0.3, 0.42, -1.0, 0.33333, -455402.1, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		var buf bytes.Buffer
		n, err := EncodeFloat(&buf, v)
		require.NoError(t, err)
		assert.Equal(t, 9, n, "floats are always marker plus 8 bytes")
		assert.Equal(t, byte(0xC1), buf.Bytes()[0])

		got, err := DecodeFloat(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEncodeFloat32Widens(t *testing.T) {
	var narrow, wide bytes.Buffer
	_, err := EncodeFloat32(&narrow, 1.5)
	require.NoError(t, err)
	_, err = EncodeFloat(&wide, 1.5)
	require.NoError(t, err)
	assert.Equal(t, wide.Bytes(), narrow.Bytes())
}

func TestDecodeFloatRejectsIntegerMarker(t *testing.T) {
	_, err := DecodeFloat(bytes.NewReader([]byte{0x01}))
	var unexpected *UnexpectedMarkerError
	require.ErrorAs(t, err, &unexpected)
}

func TestBoolRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := EncodeBool(&buf, true)
	require.NoError(t, err)
	_, err = EncodeBool(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC2, 0xC3}, buf.Bytes())

	r := bytes.NewReader(buf.Bytes())
	v, err := DecodeBool(r)
	require.NoError(t, err)
	assert.True(t, v)
	v, err = DecodeBool(r)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestDecodeBoolRejectsNull(t *testing.T) {
	_, err := DecodeBool(bytes.NewReader([]byte{0xC0}))
	var unexpected *UnexpectedMarkerError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, Null, unexpected.Marker.Type)
}

func TestEncodeNull(t *testing.T) {
	var buf bytes.Buffer
	n, err := EncodeNull(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0xC0}, buf.Bytes())
}
