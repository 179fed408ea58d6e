package xor

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("inputs have different lengths")
)

// LengthMismatchError is returned by Combine when its inputs are not the same length.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %d != %d", ErrLengthMismatch, e.Left, e.Right)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Combine returns a new slice where each byte is a[i] ^ b[i].
// Both inputs must be the same length, otherwise a *LengthMismatchError is returned.
func Combine(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
