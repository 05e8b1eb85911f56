package packstream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// EncodeNull writes the null marker.
func EncodeNull(w io.Writer) (int, error) {
	return Marker{Type: Null}.Encode(w)
}

// EncodeBool writes a boolean as its marker byte; booleans have no body.
func EncodeBool(w io.Writer, v bool) (int, error) {
	if v {
		return Marker{Type: True}.Encode(w)
	}
	return Marker{Type: False}.Encode(w)
}

// DecodeBool reads a boolean.
func DecodeBool(r io.Reader) (bool, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return false, err
	}
	return DecodeBoolBody(m, r)
}

// DecodeBoolBody interprets an already-read marker as a boolean.
func DecodeBoolBody(m Marker, _ io.Reader) (bool, error) {
	switch m.Type {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, &UnexpectedMarkerError{Marker: m}
	}
}

// EncodeInt writes v in the smallest representation that losslessly holds
// it, checked in strict ascending order: PlusTinyInt, MinusTinyInt, Int8,
// Int16, Int32, Int64. The cascade makes encoding canonical; decoding
// accepts any integer class regardless of how wide it is.
func EncodeInt(w io.Writer, v int64) (int, error) {
	switch {
	case inPlusTinyIntBound(v):
		return writeByte(w, byte(v))
	case inMinusTinyIntBound(v):
		// Two's complement directly; the 0xF0 nibble is implied by the range.
		return writeByte(w, byte(int8(v)))
	case inInt8Bound(v):
		return writeFixed(w, Int8, int8(v))
	case inInt16Bound(v):
		return writeFixed(w, Int16, int16(v))
	case inInt32Bound(v):
		return writeFixed(w, Int32, int32(v))
	default:
		return writeFixed(w, Int64, v)
	}
}

// EncodeInt32 writes a 32-bit integer. The space-minimizing cascade never
// selects a class wider than the value, so this matches EncodeInt exactly.
func EncodeInt32(w io.Writer, v int32) (int, error) {
	return EncodeInt(w, int64(v))
}

// DecodeInt reads any integer class and widens it to int64.
func DecodeInt(r io.Reader) (int64, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return 0, err
	}
	return DecodeIntBody(m, r)
}

// DecodeIntBody interprets an already-read marker as an integer, reading
// the value bytes that follow it when the class has any.
func DecodeIntBody(m Marker, r io.Reader) (int64, error) {
	switch m.Type {
	case PlusTinyInt:
		return int64(m.Byte), nil
	case MinusTinyInt:
		// The marker byte is the value in two's complement.
		return int64(int8(m.Byte)), nil
	case Int8:
		var v int8
		if err := readFixed(r, &v); err != nil {
			return 0, err
		}
		return int64(v), nil
	case Int16:
		var v int16
		if err := readFixed(r, &v); err != nil {
			return 0, err
		}
		return int64(v), nil
	case Int32:
		var v int32
		if err := readFixed(r, &v); err != nil {
			return 0, err
		}
		return int64(v), nil
	case Int64:
		var v int64
		if err := readFixed(r, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, &UnexpectedMarkerError{Marker: m}
	}
}

// DecodeInt32 reads an integer no wider than 32 bits. An Int64 marker is
// rejected even if the value would fit.
func DecodeInt32(r io.Reader) (int32, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return 0, err
	}
	return DecodeInt32Body(m, r)
}

// DecodeInt32Body interprets an already-read marker as a 32-bit integer.
func DecodeInt32Body(m Marker, r io.Reader) (int32, error) {
	if m.Type == Int64 {
		return 0, &UnexpectedMarkerError{Marker: m}
	}
	v, err := DecodeIntBody(m, r)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// EncodeFloat writes a float as the Float64 marker followed by 8 big-endian
// IEEE-754 bytes. Floats never shrink.
func EncodeFloat(w io.Writer, v float64) (int, error) {
	return writeFixed(w, Float64, math.Float64bits(v))
}

// EncodeFloat32 widens to float64 before encoding; there is no 32-bit
// float class on the wire.
func EncodeFloat32(w io.Writer, v float32) (int, error) {
	return EncodeFloat(w, float64(v))
}

// DecodeFloat reads a Float64 value.
func DecodeFloat(r io.Reader) (float64, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return 0, err
	}
	return DecodeFloatBody(m, r)
}

// DecodeFloatBody interprets an already-read marker as a float.
func DecodeFloatBody(m Marker, r io.Reader) (float64, error) {
	if m.Type != Float64 {
		return 0, &UnexpectedMarkerError{Marker: m}
	}
	var bits uint64
	if err := readFixed(r, &bits); err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// writeFixed writes a fixed-class marker followed by its big-endian body.
func writeFixed(w io.Writer, t MarkerType, v any) (int, error) {
	n, err := (Marker{Type: t}).Encode(w)
	if err != nil {
		return n, err
	}
	if err := binary.Write(w, binary.BigEndian, v); err != nil {
		return n, fmt.Errorf("packstream: write %s body: %w", t, err)
	}
	return n + binary.Size(v), nil
}

// readFixed reads a big-endian body into v.
func readFixed(r io.Reader, v any) error {
	if err := binary.Read(r, binary.BigEndian, v); err != nil {
		return fmt.Errorf("packstream: read value body: %w", err)
	}
	return nil
}
