package codec

import (
	"errors"
	"fmt"
)

var (
	ErrOddLength       = errors.New("odd length")
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	ErrInvalidBase64   = errors.New("invalid base64 data")
)

// DecodeError reports where and why an input string could not be decoded.
type DecodeError struct {
	// Encoding is the name of the text encoding being decoded, like "hex" or "base64".
	Encoding string
	// Offset is the byte index of the problem within the input.
	// For length errors this is the length of the input.
	Offset int
	// Char is the offending input byte, if any.
	Char byte
	Err  error

	length bool
}

func (e *DecodeError) Error() string {
	if e.length {
		return fmt.Sprintf("%s: %v (input length %d)", e.Encoding, e.Err, e.Offset)
	}
	return fmt.Sprintf("%s: %v %q at offset %d", e.Encoding, e.Err, e.Char, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
