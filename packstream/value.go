package packstream

import "io"

// Kind identifies which case a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindBytes
	KindString
	KindList
	KindDictionary
	KindStructure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDictionary:
		return "dictionary"
	case KindStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Value is the dynamically typed representation of any legally decodable
// PackStream value. The parameter S decides which structures a Value may
// hold: NoStruct rejects them all, GenericStruct accepts any tag
// losslessly, and user-defined sums admit exactly their own catalog.
//
// Decoding allocates a fresh owned tree; encoding only reads the value.
type Value[S StructSum[S]] struct {
	kind Kind

	// Scalar slots; one is valid depending on kind.
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	bytesVal []byte

	// Container slots.
	listVal []Value[S]
	dictVal map[string]Value[S]

	// Structure slot.
	structVal S
}

// NullValue returns the null value.
func NullValue[S StructSum[S]]() Value[S] {
	return Value[S]{kind: KindNull}
}

// BoolValue wraps a boolean.
func BoolValue[S StructSum[S]](b bool) Value[S] {
	return Value[S]{kind: KindBoolean, boolVal: b}
}

// IntValue wraps an integer.
func IntValue[S StructSum[S]](i int64) Value[S] {
	return Value[S]{kind: KindInteger, intVal: i}
}

// FloatValue wraps a float.
func FloatValue[S StructSum[S]](f float64) Value[S] {
	return Value[S]{kind: KindFloat, floatVal: f}
}

// StringValue wraps a string.
func StringValue[S StructSum[S]](s string) Value[S] {
	return Value[S]{kind: KindString, strVal: s}
}

// BytesValue wraps a byte array.
func BytesValue[S StructSum[S]](p []byte) Value[S] {
	return Value[S]{kind: KindBytes, bytesVal: p}
}

// ListValue wraps a list.
func ListValue[S StructSum[S]](xs []Value[S]) Value[S] {
	return Value[S]{kind: KindList, listVal: xs}
}

// DictionaryValue wraps a string-keyed dictionary.
func DictionaryValue[S StructSum[S]](m map[string]Value[S]) Value[S] {
	return Value[S]{kind: KindDictionary, dictVal: m}
}

// StructValue wraps a structure.
func StructValue[S StructSum[S]](s S) Value[S] {
	return Value[S]{kind: KindStructure, structVal: s}
}

// Kind returns which case the value holds.
func (v Value[S]) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value[S]) IsNull() bool { return v.kind == KindNull }

// AsBool extracts a boolean; ok is false on any other kind.
func (v Value[S]) AsBool() (bool, bool) {
	return v.boolVal, v.kind == KindBoolean
}

// AsInt extracts an integer; ok is false on any other kind.
func (v Value[S]) AsInt() (int64, bool) {
	return v.intVal, v.kind == KindInteger
}

// AsFloat extracts a float; ok is false on any other kind.
func (v Value[S]) AsFloat() (float64, bool) {
	return v.floatVal, v.kind == KindFloat
}

// AsString extracts a string; ok is false on any other kind.
func (v Value[S]) AsString() (string, bool) {
	return v.strVal, v.kind == KindString
}

// AsBytes extracts a byte array; ok is false on any other kind.
func (v Value[S]) AsBytes() ([]byte, bool) {
	return v.bytesVal, v.kind == KindBytes
}

// AsList extracts the elements of a list; ok is false on any other kind.
func (v Value[S]) AsList() ([]Value[S], bool) {
	return v.listVal, v.kind == KindList
}

// AsDictionary extracts the entries of a dictionary; ok is false on any
// other kind.
func (v Value[S]) AsDictionary() (map[string]Value[S], bool) {
	return v.dictVal, v.kind == KindDictionary
}

// AsStruct extracts the structure; ok is false on any other kind.
func (v Value[S]) AsStruct() (S, bool) {
	return v.structVal, v.kind == KindStructure
}

// Encode writes the value, delegating each case to the corresponding
// base-type or structure-sum encoder. Integers go through the same
// space-minimizing cascade as EncodeInt.
func (v Value[S]) Encode(w io.Writer) (int, error) {
	switch v.kind {
	case KindBoolean:
		return EncodeBool(w, v.boolVal)
	case KindInteger:
		return EncodeInt(w, v.intVal)
	case KindFloat:
		return EncodeFloat(w, v.floatVal)
	case KindString:
		return EncodeString(w, v.strVal)
	case KindBytes:
		return EncodeBytes(w, v.bytesVal)
	case KindList:
		return EncodeSlice(w, v.listVal, func(w io.Writer, e Value[S]) (int, error) {
			return e.Encode(w)
		})
	case KindDictionary:
		return EncodeMap(w, v.dictVal, func(w io.Writer, e Value[S]) (int, error) {
			return e.Encode(w)
		})
	case KindStructure:
		return EncodeSum(w, v.structVal)
	default:
		return EncodeNull(w)
	}
}

// Pack implements Packer.
func (v Value[S]) Pack(w io.Writer) (int, error) {
	return v.Encode(w)
}

// DecodeValue reads any value, inferring its shape from the marker alone.
func DecodeValue[S StructSum[S]](r io.Reader) (Value[S], error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return Value[S]{}, err
	}
	return DecodeValueBody[S](m, r)
}

// DecodeValueBody routes an already-read marker to the matching case:
// integer classes widen to Integer, string classes to String, list and
// dictionary classes recurse element-wise, and Structure markers dispatch
// through the sum's tag-keyed body reader.
func DecodeValueBody[S StructSum[S]](m Marker, r io.Reader) (Value[S], error) {
	switch m.Type {
	case Null:
		return NullValue[S](), nil
	case True:
		return BoolValue[S](true), nil
	case False:
		return BoolValue[S](false), nil
	case PlusTinyInt, MinusTinyInt, Int8, Int16, Int32, Int64:
		i, err := DecodeIntBody(m, r)
		if err != nil {
			return Value[S]{}, err
		}
		return IntValue[S](i), nil
	case Float64:
		f, err := DecodeFloatBody(m, r)
		if err != nil {
			return Value[S]{}, err
		}
		return FloatValue[S](f), nil
	case TinyString, String8, String16, String32:
		s, err := DecodeStringBody(m, r)
		if err != nil {
			return Value[S]{}, err
		}
		return StringValue[S](s), nil
	case Bytes8, Bytes16, Bytes32:
		p, err := DecodeBytesBody(m, r)
		if err != nil {
			return Value[S]{}, err
		}
		return BytesValue[S](p), nil
	case TinyList, List8, List16, List32:
		xs, err := DecodeSliceBody(m, r, DecodeValue[S])
		if err != nil {
			return Value[S]{}, err
		}
		return ListValue(xs), nil
	case TinyDictionary, Dictionary8, Dictionary16, Dictionary32:
		entries, err := DecodeMapBody(m, r, DecodeValue[S])
		if err != nil {
			return Value[S]{}, err
		}
		return DictionaryValue(entries), nil
	case Structure:
		var zero S
		s, err := zero.ReadStructBody(m.Size, m.Tag, r)
		if err != nil {
			return Value[S]{}, err
		}
		return StructValue(s), nil
	default:
		return Value[S]{}, &UnexpectedMarkerError{Marker: m}
	}
}
