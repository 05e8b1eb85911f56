package packstream

import "io"

// readByte reads exactly one byte from r.
func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// writeByte writes a single byte to w.
func writeByte(w io.Writer, b byte) (int, error) {
	if bw, ok := w.(io.ByteWriter); ok {
		if err := bw.WriteByte(b); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return w.Write([]byte{b})
}
