package packstream

import (
	"fmt"
	"io"
)

// Packer is implemented by types that can write themselves as PackStream.
// Implementations must be total: every value of the type has an encoding.
type Packer interface {
	Pack(w io.Writer) (int, error)
}

// Unpacker is implemented by types that can read themselves from
// PackStream.
type Unpacker interface {
	Unpack(r io.Reader) error
}

// EncodeString writes a string as a header (marker plus length) followed
// by its UTF-8 bytes.
func EncodeString(w io.Writer, s string) (int, error) {
	n, err := stringFamily.writeHeader(w, len(s))
	if err != nil {
		return n, err
	}
	bn, err := io.WriteString(w, s)
	if err != nil {
		return n + bn, fmt.Errorf("packstream: write string body: %w", err)
	}
	return n + bn, nil
}

// DecodeString reads a string of any width class.
func DecodeString(r io.Reader) (string, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return "", err
	}
	return DecodeStringBody(m, r)
}

// DecodeStringBody reads the size and UTF-8 bytes following an
// already-read string marker.
func DecodeStringBody(m Marker, r io.Reader) (string, error) {
	size, err := stringFamily.readSize(m, r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("packstream: read string body: %w", err)
	}
	return string(buf), nil
}

// EncodeBytes writes a byte array. Byte arrays have no tiny class; short
// arrays use the 8-bit size class.
func EncodeBytes(w io.Writer, p []byte) (int, error) {
	n, err := bytesFamily.writeHeader(w, len(p))
	if err != nil {
		return n, err
	}
	bn, err := w.Write(p)
	if err != nil {
		return n + bn, fmt.Errorf("packstream: write bytes body: %w", err)
	}
	return n + bn, nil
}

// DecodeBytes reads a byte array.
func DecodeBytes(r io.Reader) ([]byte, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytesBody(m, r)
}

// DecodeBytesBody reads the size and raw bytes following an already-read
// bytes marker.
func DecodeBytesBody(m Marker, r io.Reader) ([]byte, error) {
	size, err := bytesFamily.readSize(m, r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("packstream: read bytes body: %w", err)
	}
	return buf, nil
}

// EncodeSlice writes xs as a list: header, then each element through enc.
func EncodeSlice[E any](w io.Writer, xs []E, enc func(io.Writer, E) (int, error)) (int, error) {
	n, err := listFamily.writeHeader(w, len(xs))
	if err != nil {
		return n, err
	}
	for _, x := range xs {
		en, err := enc(w, x)
		n += en
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// DecodeSlice reads a list, decoding each element through dec.
func DecodeSlice[E any](r io.Reader, dec func(io.Reader) (E, error)) ([]E, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return nil, err
	}
	return DecodeSliceBody(m, r, dec)
}

// DecodeSliceBody reads the elements following an already-read list
// marker. A failing element aborts the whole list.
func DecodeSliceBody[E any](m Marker, r io.Reader, dec func(io.Reader) (E, error)) ([]E, error) {
	size, err := listFamily.readSize(m, r)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, size)
	for i := 0; i < size; i++ {
		e, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// EncodeMap writes m as a dictionary: header, then key-value pairs. Keys
// are always encoded as strings. Iteration order is unspecified;
// dictionaries are order-irrelevant on the wire.
func EncodeMap[V any](w io.Writer, m map[string]V, enc func(io.Writer, V) (int, error)) (int, error) {
	n, err := dictionaryFamily.writeHeader(w, len(m))
	if err != nil {
		return n, err
	}
	for k, v := range m {
		kn, err := EncodeString(w, k)
		n += kn
		if err != nil {
			return n, err
		}
		vn, err := enc(w, v)
		n += vn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// DecodeMap reads a dictionary, decoding each value through dec.
func DecodeMap[V any](r io.Reader, dec func(io.Reader) (V, error)) (map[string]V, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return nil, err
	}
	return DecodeMapBody(m, r, dec)
}

// DecodeMapBody reads the key-value pairs following an already-read
// dictionary marker. A repeated key silently replaces the earlier entry;
// that is map semantics, not a decode failure.
func DecodeMapBody[V any](m Marker, r io.Reader, dec func(io.Reader) (V, error)) (map[string]V, error) {
	size, err := dictionaryFamily.readSize(m, r)
	if err != nil {
		return nil, err
	}
	out := make(map[string]V, size)
	for i := 0; i < size; i++ {
		k, err := DecodeString(r)
		if err != nil {
			return nil, err
		}
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// EncodeOption writes *p, or the null marker when p is nil.
func EncodeOption[T any](w io.Writer, p *T, enc func(io.Writer, T) (int, error)) (int, error) {
	if p == nil {
		return EncodeNull(w)
	}
	return enc(w, *p)
}

// DecodeOption reads an optional value: the null marker yields nil, any
// other marker is handed to decBody for the present case.
func DecodeOption[T any](r io.Reader, decBody func(Marker, io.Reader) (T, error)) (*T, error) {
	m, err := DecodeMarker(r)
	if err != nil {
		return nil, err
	}
	if m.Type == Null {
		return nil, nil
	}
	v, err := decBody(m, r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeProperty writes one dictionary entry flat: the key as a string,
// then the value. Useful when assembling dictionary bodies by hand.
func EncodeProperty[V any](w io.Writer, key string, v V, enc func(io.Writer, V) (int, error)) (int, error) {
	n, err := EncodeString(w, key)
	if err != nil {
		return n, err
	}
	vn, err := enc(w, v)
	return n + vn, err
}

// DecodeProperty reads one dictionary entry flat: a string key, then the
// value.
func DecodeProperty[V any](r io.Reader, dec func(io.Reader) (V, error)) (string, V, error) {
	var zero V
	key, err := DecodeString(r)
	if err != nil {
		return "", zero, err
	}
	v, err := dec(r)
	if err != nil {
		return "", zero, err
	}
	return key, v, nil
}
