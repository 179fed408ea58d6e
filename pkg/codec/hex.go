package codec

const hexDigits = "0123456789abcdef"

// DecodeHex interprets each pair of characters in text as a base-16 byte value, most significant digit first.
// Both upper and lower case digits are accepted.
// A *DecodeError is returned if text has an odd length or contains a character that isn't a hex digit.
func DecodeHex(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, &DecodeError{Encoding: "hex", Offset: len(text), Err: ErrOddLength, length: true}
	}
	out := make([]byte, len(text)/2)
	for i := 0; i < len(text); i += 2 {
		hi, ok := fromHexChar(text[i])
		if !ok {
			return nil, &DecodeError{Encoding: "hex", Offset: i, Char: text[i], Err: ErrInvalidHexDigit}
		}
		lo, ok := fromHexChar(text[i+1])
		if !ok {
			return nil, &DecodeError{Encoding: "hex", Offset: i + 1, Char: text[i+1], Err: ErrInvalidHexDigit}
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// EncodeHex returns the lower case hex text for data.
func EncodeHex(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return string(out)
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
