package packstream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// book is a fixed-shape test record: tag 0x0B, two fields.
type book struct {
	Title string
	Pages int64
}

func (book) TagByte() byte  { return 0x0B }
func (book) NumFields() int { return 2 }

func (b book) WriteBody(w io.Writer) (int, error) {
	n, err := EncodeString(w, b.Title)
	if err != nil {
		return n, err
	}
	pn, err := EncodeInt(w, b.Pages)
	return n + pn, err
}

func (b *book) ReadBody(r io.Reader) error {
	title, err := DecodeString(r)
	if err != nil {
		return err
	}
	pages, err := DecodeInt(r)
	if err != nil {
		return err
	}
	b.Title = title
	b.Pages = pages
	return nil
}

// wideRecord claims more fields than the 4-bit count nibble can carry.
type wideRecord struct{}

func (wideRecord) TagByte() byte                    { return 0x77 }
func (wideRecord) NumFields() int                   { return 16 }
func (wideRecord) WriteBody(io.Writer) (int, error) { return 0, nil }
func (*wideRecord) ReadBody(io.Reader) error        { return nil }

func TestStructGolden(t *testing.T) {
	var buf bytes.Buffer
	_, err := EncodeStruct(&buf, &book{Title: "Go", Pages: 380})
	require.NoError(t, err)
	want := []byte{
		0xB2, 0x0B, // Structure, 2 fields, tag 0x0B
		0x82, 'G', 'o',
		0xC9, 0x01, 0x7C, // 380
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestStructRoundTrip(t *testing.T) {
	in := book{Title: "The Go Programming Language", Pages: 380}
	var buf bytes.Buffer
	_, err := EncodeStruct(&buf, &in)
	require.NoError(t, err)

	var out book
	require.NoError(t, DecodeStruct(bytes.NewReader(buf.Bytes()), &out))
	assert.Equal(t, in, out)
}

// TestDecodeStructWrongFieldCount: the field count is verified before the
// tag, so a count mismatch reports as such even when the tag also differs.
func TestDecodeStructWrongFieldCount(t *testing.T) {
	input := []byte{0xB3, 0x0B, 0xC0, 0xC0, 0xC0}
	var out book
	err := DecodeStruct(bytes.NewReader(input), &out)
	var fields *UnexpectedNumberOfFieldsError
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, 2, fields.Expected)
	assert.Equal(t, 3, fields.Got)
}

func TestDecodeStructWrongTag(t *testing.T) {
	// Correct field count, unexpected tag.
	input := []byte{0xB2, 0x4E, 0xC0, 0xC0}
	var out book
	err := DecodeStruct(bytes.NewReader(input), &out)
	var tag UnexpectedTagByteError
	require.ErrorAs(t, err, &tag)
	assert.Equal(t, UnexpectedTagByteError(0x4E), tag)
}

func TestDecodeStructRejectsNonStructure(t *testing.T) {
	var out book
	err := DecodeStruct(bytes.NewReader([]byte{0x92}), &out)
	var unexpected *UnexpectedMarkerError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, TinyList, unexpected.Marker.Type)
}

func TestEncodeStructTooManyFields(t *testing.T) {
	var buf bytes.Buffer
	_, err := EncodeStruct(&buf, &wideRecord{})
	var tooMany TooManyStructFieldsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, TooManyStructFieldsError(16), tooMany)
	assert.Zero(t, buf.Len(), "nothing may reach the stream")
}

func TestGenericStructRoundTrip(t *testing.T) {
	in := GenericStruct{
		Tag: 0x66,
		Fields: []Value[GenericStruct]{
			IntValue[GenericStruct](42),
			StringValue[GenericStruct]("anything"),
			StructValue(GenericStruct{Tag: 0x01, Fields: nil}),
		},
	}
	var buf bytes.Buffer
	_, err := EncodeSum(&buf, in)
	require.NoError(t, err)

	out, err := DecodeSum[GenericStruct](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, byte(0x66), out.Tag)
	require.Len(t, out.Fields, 3)
	i, ok := out.Fields[0].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)
	nested, ok := out.Fields[2].AsStruct()
	require.True(t, ok)
	assert.Equal(t, byte(0x01), nested.Tag)
}

// TestGenericStructPreservesUnknownBytes: an unknown structure decoded
// generically re-encodes to the identical byte sequence.
func TestGenericStructPreservesUnknownBytes(t *testing.T) {
	input := []byte{
		0xB2, 0x99, // unknown tag
		0x85, 'h', 'e', 'l', 'l', 'o',
		0x91, 0x2A, // list of one int
	}
	v, err := DecodeValue[GenericStruct](bytes.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = v.Encode(&buf)
	require.NoError(t, err)
	assert.Equal(t, input, buf.Bytes())
}

func TestNoStructRefusesStructures(t *testing.T) {
	_, err := DecodeValue[NoStruct](bytes.NewReader([]byte{0xB0, 0x00}))
	require.ErrorIs(t, err, ErrTryingToDecodeNoStruct)
}

func TestNoStructEncodePanics(t *testing.T) {
	require.Panics(t, func() {
		var buf bytes.Buffer
		_, _ = EncodeSum(&buf, NoStruct{})
	})
}
