package xor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

// keyRing hands out key bytes in order, wrapping back to the first byte after the last.
type keyRing struct {
	key   []byte
	start int
	pos   int
}

func newKeyRing(key []byte, offset ...int) (*keyRing, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	ring := &keyRing{key: key}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for key of length %d", offset[0], len(key))
		}
		ring.start = offset[0]
		ring.pos = offset[0]
	}
	return ring, nil
}

func (k *keyRing) apply(dst, src []byte) {
	for i, b := range src {
		dst[i] = b ^ k.key[k.pos]
		k.pos++
		if k.pos == len(k.key) {
			k.pos = 0
		}
	}
}

func (k *keyRing) rewind() {
	k.pos = k.start
}

// RepeatingKey XORs data with key, cycling through the key from its first byte.
// The result is a new slice the same length as data.
func RepeatingKey(data, key []byte) ([]byte, error) {
	ring, err := newKeyRing(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	ring.apply(out, data)
	return out, nil
}
