package packstream

import (
	"fmt"
	"io"
)

// MarkerType identifies the class of a marker byte. For nibble-tagged
// classes the constant is the canonical high nibble; for fixed classes it
// is the exact marker byte.
type MarkerType uint8

const (
	// Nibble-tagged classes carrying a size in the low nibble.
	TinyString     MarkerType = 0x80
	TinyList       MarkerType = 0x90
	TinyDictionary MarkerType = 0xA0
	Structure      MarkerType = 0xB0

	// Inline-value classes. The marker byte is the value.
	PlusTinyInt  MarkerType = 0x00
	MinusTinyInt MarkerType = 0xF0

	// Fixed classes.
	Null    MarkerType = 0xC0
	Float64 MarkerType = 0xC1
	True    MarkerType = 0xC2
	False   MarkerType = 0xC3

	Int8  MarkerType = 0xC8
	Int16 MarkerType = 0xC9
	Int32 MarkerType = 0xCA
	Int64 MarkerType = 0xCB

	// Size-class markers followed by an explicit length field.
	Bytes8  MarkerType = 0xCC
	Bytes16 MarkerType = 0xCD
	Bytes32 MarkerType = 0xCE

	String8  MarkerType = 0xD0
	String16 MarkerType = 0xD1
	String32 MarkerType = 0xD2

	List8  MarkerType = 0xD4
	List16 MarkerType = 0xD5
	List32 MarkerType = 0xD6

	Dictionary8  MarkerType = 0xD8
	Dictionary16 MarkerType = 0xD9
	Dictionary32 MarkerType = 0xDA
)

// String returns the marker class name.
func (t MarkerType) String() string {
	switch t {
	case TinyString:
		return "TinyString"
	case TinyList:
		return "TinyList"
	case TinyDictionary:
		return "TinyDictionary"
	case Structure:
		return "Structure"
	case PlusTinyInt:
		return "PlusTinyInt"
	case MinusTinyInt:
		return "MinusTinyInt"
	case Null:
		return "Null"
	case Float64:
		return "Float64"
	case True:
		return "True"
	case False:
		return "False"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Bytes8:
		return "Bytes8"
	case Bytes16:
		return "Bytes16"
	case Bytes32:
		return "Bytes32"
	case String8:
		return "String8"
	case String16:
		return "String16"
	case String32:
		return "String32"
	case List8:
		return "List8"
	case List16:
		return "List16"
	case List32:
		return "List32"
	case Dictionary8:
		return "Dictionary8"
	case Dictionary16:
		return "Dictionary16"
	case Dictionary32:
		return "Dictionary32"
	default:
		return "unknown"
	}
}

// Marker is the first byte of any encoded value (a byte pair for
// structures). It identifies the type of the value that follows and may
// carry inline data: the embedded size of a tiny class, the field count
// and tag of a structure, or the raw byte of a tiny integer.
//
// Markers are ephemeral: they are produced and consumed within a single
// encode or decode call and never persist.
type Marker struct {
	Type MarkerType
	Size int  // embedded size (tiny classes) or field count (Structure)
	Tag  byte // structure tag byte
	Byte byte // raw marker byte (PlusTinyInt, MinusTinyInt)
}

// TinyStringMarker returns a TinyString marker with an embedded size.
// Size must be at most 15; larger sizes must use a size-class marker.
func TinyStringMarker(size int) Marker {
	return Marker{Type: TinyString, Size: size}
}

// TinyListMarker returns a TinyList marker with an embedded size.
func TinyListMarker(size int) Marker {
	return Marker{Type: TinyList, Size: size}
}

// TinyDictionaryMarker returns a TinyDictionary marker with an embedded size.
func TinyDictionaryMarker(size int) Marker {
	return Marker{Type: TinyDictionary, Size: size}
}

// StructureMarker returns a Structure marker with a field count and tag.
func StructureMarker(fields int, tag byte) Marker {
	return Marker{Type: Structure, Size: fields, Tag: tag}
}

// PlusTinyIntMarker returns a PlusTinyInt marker; b is the value itself.
func PlusTinyIntMarker(b byte) Marker {
	return Marker{Type: PlusTinyInt, Byte: b}
}

// MinusTinyIntMarker returns a MinusTinyInt marker; b holds the value as
// a two's complement 8-bit byte in the range 0xF0..0xFF.
func MinusTinyIntMarker(b byte) Marker {
	return Marker{Type: MinusTinyInt, Byte: b}
}

// String renders the marker for error messages.
func (m Marker) String() string {
	switch m.Type {
	case TinyString, TinyList, TinyDictionary:
		return fmt.Sprintf("%s(%d)", m.Type, m.Size)
	case Structure:
		return fmt.Sprintf("Structure(%d, 0x%02X)", m.Size, m.Tag)
	case PlusTinyInt, MinusTinyInt:
		return fmt.Sprintf("%s(0x%02X)", m.Type, m.Byte)
	default:
		return m.Type.String()
	}
}

// Encode writes the marker: one byte for plain and inline classes, two
// bytes (nibble-combined byte plus tag) for structures. Sizes above 15
// must never reach the tiny paths; size-class selection upstream
// guarantees that.
func (m Marker) Encode(w io.Writer) (int, error) {
	switch m.Type {
	case TinyString, TinyList, TinyDictionary:
		return writeByte(w, combineNibbles(byte(m.Type), byte(m.Size)))
	case Structure:
		return w.Write([]byte{combineNibbles(byte(Structure), byte(m.Size)), m.Tag})
	case PlusTinyInt, MinusTinyInt:
		return writeByte(w, m.Byte)
	default:
		return writeByte(w, byte(m.Type))
	}
}

// DecodeMarker reads one marker from r. The classification order is fixed
// and load-bearing: the PlusTinyInt range and the MinusTinyInt nibble
// overlap the nibble tests and must win first. A Structure marker consumes
// one extra byte for the tag. Bytes matching no class fail with
// UnknownMarkerByteError.
func DecodeMarker(r io.Reader) (Marker, error) {
	b, err := readByte(r)
	if err != nil {
		return Marker{}, fmt.Errorf("packstream: read marker: %w", err)
	}
	switch {
	case b <= MaxPlusTinyInt:
		return PlusTinyIntMarker(b), nil
	case highNibbleEquals(b, byte(MinusTinyInt)):
		return MinusTinyIntMarker(b), nil
	case highNibbleEquals(b, byte(TinyString)):
		return TinyStringMarker(tinySize(b)), nil
	case highNibbleEquals(b, byte(TinyList)):
		return TinyListMarker(tinySize(b)), nil
	case highNibbleEquals(b, byte(TinyDictionary)):
		return TinyDictionaryMarker(tinySize(b)), nil
	case highNibbleEquals(b, byte(Structure)):
		tag, err := readByte(r)
		if err != nil {
			return Marker{}, fmt.Errorf("packstream: read structure tag: %w", err)
		}
		return StructureMarker(tinySize(b), tag), nil
	}
	switch MarkerType(b) {
	case Null, Float64, True, False,
		Int8, Int16, Int32, Int64,
		Bytes8, Bytes16, Bytes32,
		String8, String16, String32,
		List8, List16, List32,
		Dictionary8, Dictionary16, Dictionary32:
		return Marker{Type: MarkerType(b)}, nil
	}
	return Marker{}, UnknownMarkerByteError(b)
}
