package packstream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxSize is the largest size the wire format can carry: the 32-bit size
// field is signed, so the ceiling is the largest positive int32.
const MaxSize = math.MaxInt32

// LengthKind selects one of the four size field widths.
type LengthKind uint8

const (
	LengthTiny LengthKind = iota // size lives in the marker nibble, no field
	Length8                      // 1 byte
	Length16                     // 2 bytes, big-endian
	Length32                     // 4 bytes, big-endian
)

// Length is the explicit size field that follows a size-class marker for
// strings, lists, dictionaries and byte arrays. LengthOf picks the
// smallest kind that fits, which makes the encoded form canonical.
type Length struct {
	Kind LengthKind
	Size uint32
}

// LengthOf converts a size into its smallest fitting Length. Sizes beyond
// MaxSize fail with ErrSizeOutOfRange.
func LengthOf(size int) (Length, error) {
	switch {
	case size < 0 || size > MaxSize:
		return Length{}, ErrSizeOutOfRange
	case size <= 0x0F:
		return Length{Kind: LengthTiny, Size: uint32(size)}, nil
	case size <= math.MaxUint8:
		return Length{Kind: Length8, Size: uint32(size)}, nil
	case size <= math.MaxUint16:
		return Length{Kind: Length16, Size: uint32(size)}, nil
	default:
		return Length{Kind: Length32, Size: uint32(size)}, nil
	}
}

// Encode writes the size field: nothing for tiny (the marker nibble
// already carries it), 1/2/4 big-endian bytes otherwise.
func (l Length) Encode(w io.Writer) (int, error) {
	switch l.Kind {
	case LengthTiny:
		return 0, nil
	case Length8:
		return writeByte(w, byte(l.Size))
	case Length16:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(l.Size))
		return w.Write(buf[:])
	default:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], l.Size)
		return w.Write(buf[:])
	}
}

func readSize8(r io.Reader) (int, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, fmt.Errorf("packstream: read size: %w", err)
	}
	return int(b), nil
}

func readSize16(r io.Reader) (int, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("packstream: read size: %w", err)
	}
	return int(binary.BigEndian.Uint16(buf[:])), nil
}

func readSize32(r io.Reader) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("packstream: read size: %w", err)
	}
	size := int32(binary.BigEndian.Uint32(buf[:]))
	if size < 0 {
		return 0, ErrCannotReadSizeInfo
	}
	return int(size), nil
}
