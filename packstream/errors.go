package packstream

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrCannotReadSizeInfo reports a wire size field whose value does not
	// fit the size representation (a negative 32-bit size).
	ErrCannotReadSizeInfo = errors.New("packstream: cannot read size info")

	// ErrTryingToDecodeNoStruct reports an attempt to decode a structure
	// value against the NoStruct placeholder.
	ErrTryingToDecodeNoStruct = errors.New("packstream: not allowed to decode a structure into NoStruct")

	// ErrSizeOutOfRange reports a size beyond the 32-bit ceiling of the
	// wire format.
	ErrSizeOutOfRange = errors.New("packstream: size exceeds the 32-bit wire format ceiling")
)

// UnknownMarkerByteError reports a marker byte that belongs to no defined
// marker class.
type UnknownMarkerByteError byte

func (e UnknownMarkerByteError) Error() string {
	return fmt.Sprintf("packstream: unknown marker byte 0x%02X", byte(e))
}

// UnexpectedMarkerError reports a well-formed marker whose class does not
// match what the decoding context required, e.g. a list marker where a
// dictionary was expected.
type UnexpectedMarkerError struct {
	Marker Marker
}

func (e *UnexpectedMarkerError) Error() string {
	return fmt.Sprintf("packstream: unexpected marker %s", e.Marker)
}

// UnexpectedTagByteError reports a structure tag byte that matches no
// known or expected structure type.
type UnexpectedTagByteError byte

func (e UnexpectedTagByteError) Error() string {
	return fmt.Sprintf("packstream: unexpected tag byte 0x%02X", byte(e))
}

// UnexpectedNumberOfFieldsError reports a structure whose declared field
// count does not match the expected shape.
type UnexpectedNumberOfFieldsError struct {
	Expected int
	Got      int
}

func (e *UnexpectedNumberOfFieldsError) Error() string {
	return fmt.Sprintf("packstream: expected %d structure fields but got %d", e.Expected, e.Got)
}

// TooManyStructFieldsError reports a structure that declares more fields
// than the 4-bit field count nibble can carry.
type TooManyStructFieldsError int

func (e TooManyStructFieldsError) Error() string {
	return fmt.Sprintf("packstream: too many struct fields: %d (limit %d)", int(e), MaxStructFields)
}
