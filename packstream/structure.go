package packstream

import "io"

// MaxStructFields is the ceiling of the 4-bit field count nibble.
const MaxStructFields = 15

// Struct is the contract for fixed-shape record types. A Struct declares
// a constant tag byte and field count and reads or writes just its body:
// no marker, no tag, field count already known. EncodeStruct and
// DecodeStruct wrap a Struct with the surrounding marker bookkeeping.
//
// ReadBody must be implemented on a pointer receiver; DecodeStruct fills
// the value in place.
type Struct interface {
	TagByte() byte
	NumFields() int
	WriteBody(w io.Writer) (int, error)
	ReadBody(r io.Reader) error
}

// EncodeStruct writes a full structure: the Structure marker carrying the
// field count and tag, then the body. Structures with more than 15 fields
// cannot exist on the wire and fail with TooManyStructFieldsError.
func EncodeStruct(w io.Writer, s Struct) (int, error) {
	fields := s.NumFields()
	if fields > MaxStructFields {
		return 0, TooManyStructFieldsError(fields)
	}
	n, err := StructureMarker(fields, s.TagByte()).Encode(w)
	if err != nil {
		return n, err
	}
	bn, err := s.WriteBody(w)
	return n + bn, err
}

// DecodeStruct reads a full structure into s. The declared field count and
// tag byte are both verified before the body is read; the double check
// keeps one structure type from being misread as another.
func DecodeStruct(r io.Reader, s Struct) error {
	m, err := DecodeMarker(r)
	if err != nil {
		return err
	}
	if m.Type != Structure {
		return &UnexpectedMarkerError{Marker: m}
	}
	if m.Size != s.NumFields() {
		return &UnexpectedNumberOfFieldsError{Expected: s.NumFields(), Got: m.Size}
	}
	if m.Tag != s.TagByte() {
		return UnexpectedTagByteError(m.Tag)
	}
	return s.ReadBody(r)
}

// StructSum is an open enumeration of structure types sharing one
// tag-keyed decode dispatch. Given a field count and tag byte,
// ReadStructBody decodes the matching variant's body; the remaining
// methods describe and serialize the variant a value holds. New record
// types join a sum without touching the codec.
//
// Tag bytes across the variants of one sum must be pairwise distinct.
// That is a definition-time invariant of the sum, not something decode
// re-checks on every call.
//
// ReadStructBody is called on the zero value of S.
type StructSum[S any] interface {
	ReadStructBody(fields int, tag byte, r io.Reader) (S, error)
	WriteStructBody(w io.Writer) (int, error)
	FieldsLen() int
	TagByte() byte
}

// EncodeSum writes a full structure for a structure-sum value: Structure
// marker from FieldsLen and TagByte, then the body.
func EncodeSum[S StructSum[S]](w io.Writer, s S) (int, error) {
	fields := s.FieldsLen()
	if fields > MaxStructFields {
		return 0, TooManyStructFieldsError(fields)
	}
	n, err := StructureMarker(fields, s.TagByte()).Encode(w)
	if err != nil {
		return n, err
	}
	bn, err := s.WriteStructBody(w)
	return n + bn, err
}

// DecodeSum reads a full structure through a sum's tag dispatch.
func DecodeSum[S StructSum[S]](r io.Reader) (S, error) {
	var zero S
	m, err := DecodeMarker(r)
	if err != nil {
		return zero, err
	}
	return DecodeSumBody[S](m, r)
}

// DecodeSumBody dispatches an already-read Structure marker to the sum's
// body reader.
func DecodeSumBody[S StructSum[S]](m Marker, r io.Reader) (S, error) {
	var zero S
	if m.Type != Structure {
		return zero, &UnexpectedMarkerError{Marker: m}
	}
	return zero.ReadStructBody(m.Size, m.Tag, r)
}

// GenericStruct is the universal structure fallback: it accepts any tag
// byte and keeps the fields as decoded values, so unknown structure
// catalogs parse losslessly and re-encode byte-compatibly. Fields that
// are themselves structures decode as nested GenericStructs.
type GenericStruct struct {
	Tag    byte
	Fields []Value[GenericStruct]
}

// ReadStructBody decodes any structure body into a GenericStruct.
func (GenericStruct) ReadStructBody(fields int, tag byte, r io.Reader) (GenericStruct, error) {
	out := GenericStruct{Tag: tag, Fields: make([]Value[GenericStruct], 0, fields)}
	for i := 0; i < fields; i++ {
		v, err := DecodeValue[GenericStruct](r)
		if err != nil {
			return GenericStruct{}, err
		}
		out.Fields = append(out.Fields, v)
	}
	return out, nil
}

// WriteStructBody writes the fields in order.
func (s GenericStruct) WriteStructBody(w io.Writer) (int, error) {
	n := 0
	for _, f := range s.Fields {
		fn, err := f.Encode(w)
		n += fn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// FieldsLen returns the number of fields.
func (s GenericStruct) FieldsLen() int { return len(s.Fields) }

// TagByte returns the structure tag.
func (s GenericStruct) TagByte() byte { return s.Tag }

// NoStruct is the structure-denying placeholder. Using it as the sum
// parameter of Value statically rules structures out: decoding a
// Structure marker fails with ErrTryingToDecodeNoStruct, and no NoStruct
// value can legitimately reach an encoder.
type NoStruct struct{}

// ReadStructBody always fails; NoStruct admits no structures.
func (NoStruct) ReadStructBody(_ int, _ byte, _ io.Reader) (NoStruct, error) {
	return NoStruct{}, ErrTryingToDecodeNoStruct
}

// WriteStructBody is unreachable by construction: the decode path never
// produces a NoStruct value, so none can arrive here.
func (NoStruct) WriteStructBody(_ io.Writer) (int, error) {
	panic("packstream: NoStruct cannot be encoded")
}

// FieldsLen returns 0.
func (NoStruct) FieldsLen() int { return 0 }

// TagByte returns 0.
func (NoStruct) TagByte() byte { return 0 }
