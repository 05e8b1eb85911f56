// Package stream frames encoded PackStream messages for transfer over a
// byte stream. A message travels as a run of chunks, each a 2-byte
// big-endian size header followed by that many payload bytes; a zero-size
// header ends the message. The package moves bytes to and from the
// io.Writer or io.Reader it is handed and owns no connections.
package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/graphwire/packstream/packstream"
)

// MaxChunkSize is the largest payload one chunk can carry.
const MaxChunkSize = 0xFFFF

// Writer frames messages into chunked transfer encoding.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a Writer framing onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMessage writes p as one chunked message: full chunks of
// MaxChunkSize, a final partial chunk, then the end-of-message header.
// An empty message is just the end-of-message header.
func (w *Writer) WriteMessage(p []byte) error {
	var hdr [2]byte
	for len(p) > 0 {
		n := len(p)
		if n > MaxChunkSize {
			n = MaxChunkSize
		}
		binary.BigEndian.PutUint16(hdr[:], uint16(n))
		if _, err := w.w.Write(hdr[:]); err != nil {
			return fmt.Errorf("stream: write chunk header: %w", err)
		}
		if _, err := w.w.Write(p[:n]); err != nil {
			return fmt.Errorf("stream: write chunk payload: %w", err)
		}
		p = p[n:]
	}
	binary.BigEndian.PutUint16(hdr[:], 0)
	if _, err := w.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("stream: write end of message: %w", err)
	}
	return nil
}

// EncodeMessage runs encode against an internal buffer and frames the
// result as one message.
func (w *Writer) EncodeMessage(encode func(io.Writer) error) error {
	w.buf.Reset()
	if err := encode(&w.buf); err != nil {
		return err
	}
	return w.WriteMessage(w.buf.Bytes())
}

// EncodeValue frames one dynamically typed value as a message.
func (w *Writer) EncodeValue(v packstream.Value[packstream.GenericStruct]) error {
	return w.EncodeMessage(func(dst io.Writer) error {
		_, err := v.Encode(dst)
		return err
	})
}

// Reader reassembles chunked messages from a byte stream.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadMessage reads chunks up to and including the end-of-message header
// and returns the reassembled payload. A clean end of stream before the
// first header yields io.EOF; a stream cut inside a message yields
// io.ErrUnexpectedEOF.
func (r *Reader) ReadMessage() ([]byte, error) {
	var hdr [2]byte
	out := []byte{}
	first := true
	for {
		if _, err := io.ReadFull(r.r, hdr[:]); err != nil {
			if first && err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("stream: read chunk header: %w", eofToUnexpected(err))
		}
		first = false
		size := binary.BigEndian.Uint16(hdr[:])
		if size == 0 {
			return out, nil
		}
		chunk := make([]byte, size)
		if _, err := io.ReadFull(r.r, chunk); err != nil {
			return nil, fmt.Errorf("stream: read chunk payload: %w", eofToUnexpected(err))
		}
		out = append(out, chunk...)
	}
}

// DecodeValue reads one message and decodes it as a dynamically typed
// value. Trailing bytes after the value are a framing error.
func (r *Reader) DecodeValue() (packstream.Value[packstream.GenericStruct], error) {
	p, err := r.ReadMessage()
	if err != nil {
		return packstream.Value[packstream.GenericStruct]{}, err
	}
	br := bytes.NewReader(p)
	v, err := packstream.DecodeValue[packstream.GenericStruct](br)
	if err != nil {
		return packstream.Value[packstream.GenericStruct]{}, err
	}
	if br.Len() > 0 {
		return packstream.Value[packstream.GenericStruct]{}, fmt.Errorf("stream: %d trailing bytes after message value", br.Len())
	}
	return v, nil
}

// eofToUnexpected maps a bare EOF inside a message to ErrUnexpectedEOF so
// a truncated stream is distinguishable from a finished one.
func eofToUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
