package packstream

import "io"

// markerFamily groups the marker classes of one sized type. Strings, lists
// and dictionaries have a tiny class with the size embedded in the marker;
// byte arrays do not and start at the 8-bit class.
type markerFamily struct {
	tiny    MarkerType
	hasTiny bool
	bit8    MarkerType
	bit16   MarkerType
	bit32   MarkerType
}

var (
	stringFamily     = markerFamily{tiny: TinyString, hasTiny: true, bit8: String8, bit16: String16, bit32: String32}
	listFamily       = markerFamily{tiny: TinyList, hasTiny: true, bit8: List8, bit16: List16, bit32: List32}
	dictionaryFamily = markerFamily{tiny: TinyDictionary, hasTiny: true, bit8: Dictionary8, bit16: Dictionary16, bit32: Dictionary32}
	bytesFamily      = markerFamily{bit8: Bytes8, bit16: Bytes16, bit32: Bytes32}
)

// header computes the marker and length field for a value of the given
// size. Families without a tiny class promote tiny sizes to the 8-bit
// class.
func (f markerFamily) header(size int) (Marker, Length, error) {
	l, err := LengthOf(size)
	if err != nil {
		return Marker{}, Length{}, err
	}
	if l.Kind == LengthTiny && !f.hasTiny {
		l.Kind = Length8
	}
	switch l.Kind {
	case LengthTiny:
		return Marker{Type: f.tiny, Size: size}, l, nil
	case Length8:
		return Marker{Type: f.bit8}, l, nil
	case Length16:
		return Marker{Type: f.bit16}, l, nil
	default:
		return Marker{Type: f.bit32}, l, nil
	}
}

// writeHeader is the header phase of sized encoding: marker first, then
// the explicit length field when the size does not fit the marker nibble.
func (f markerFamily) writeHeader(w io.Writer, size int) (int, error) {
	m, l, err := f.header(size)
	if err != nil {
		return 0, err
	}
	n, err := m.Encode(w)
	if err != nil {
		return n, err
	}
	ln, err := l.Encode(w)
	return n + ln, err
}

// readSize resolves the size announced by an already-read marker: tiny
// markers embed it, size-class markers are followed by an explicit field.
// Markers outside the family fail with UnexpectedMarkerError. This single
// dispatch serves strings, lists, dictionaries and byte arrays alike.
func (f markerFamily) readSize(m Marker, r io.Reader) (int, error) {
	switch {
	case f.hasTiny && m.Type == f.tiny:
		return m.Size, nil
	case m.Type == f.bit8:
		return readSize8(r)
	case m.Type == f.bit16:
		return readSize16(r)
	case m.Type == f.bit32:
		return readSize32(r)
	default:
		return 0, &UnexpectedMarkerError{Marker: m}
	}
}
