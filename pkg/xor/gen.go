package xor

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// GenKey returns length bytes read from the OS entropy pool.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("key length must be positive")
	}
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to read random key bytes: %w", err)
	}
	return key, nil
}

// GenKeyAndOffset returns a random key along with a random starting offset within it.
func GenKeyAndOffset(length int) ([]byte, int, error) {
	key, err := GenKey(length)
	if err != nil {
		return nil, 0, err
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, 0, fmt.Errorf("failed to read random offset: %w", err)
	}
	return key, keyOffset(binary.BigEndian.Uint64(buf[:]), uint64(length)), nil
}

// keyOffset maps a random value onto [0, length) without narrowing length.
func keyOffset(random, length uint64) int {
	return int(random % length)
}
