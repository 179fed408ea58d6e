package xor

import (
	"io"
)

// Reader is an io.Reader applying a repeating key to everything read through it.
type Reader interface {
	io.Reader
	// Reset switches to a new source and rewinds the key to its starting offset.
	Reset(source io.Reader)
}

// Writer is an io.Writer applying a repeating key to everything written through it.
type Writer interface {
	io.Writer
	// Reset switches to a new target and rewinds the key to its starting offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	ring   *keyRing
}

// NewReader wraps r so that bytes read are XORed with key, beginning at the optional offset.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	ring, err := newKeyRing(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{source: r, ring: ring}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.source.Read(p)
	r.ring.apply(p[:n], p[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.ring.rewind()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	ring   *keyRing
}

// NewWriter wraps w so that bytes written are XORed with key, beginning at the optional offset.
// The caller's buffer is never modified.
func NewWriter(w io.Writer, key []byte, offset ...int) (Writer, error) {
	ring, err := newKeyRing(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{target: w, ring: ring}, nil
}

func (w *writer) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	w.ring.apply(buf, p)
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.ring.rewind()
}
