package codec

const padChar = '='

var (
	base64Alphabet = [64]byte{
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
		'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
	}
	base64Index = func() [256]int8 {
		var idx [256]int8
		for i := range idx {
			idx[i] = -1
		}
		for i, c := range base64Alphabet {
			idx[c] = int8(i)
		}
		return idx
	}()
)

// EncodeBase64 returns the standard, padded Base64 text for data.
// An empty input produces an empty string.
func EncodeBase64(data []byte) string {
	out := make([]byte, 0, (len(data)+2)/3*4)
	for start := 0; start < len(data); start += 3 {
		group := data[start:min(start+3, len(data))]

		// Left-align the group in a 24-bit accumulator, missing bytes stay zero.
		var acc uint32
		for i, b := range group {
			acc |= uint32(b) << (16 - 8*i)
		}

		bits := len(group) * 8
		for i := 0; i < 4; i++ {
			if i*6 < bits {
				out = append(out, base64Alphabet[(acc>>(18-6*i))&0x3f])
			} else {
				out = append(out, padChar)
			}
		}
	}
	return string(out)
}

// DecodeBase64 reverses EncodeBase64.
// Only canonical, padded text is accepted: the length must be a multiple of 4, and padding may only appear at the end of the final group.
func DecodeBase64(text string) ([]byte, error) {
	if len(text)%4 != 0 {
		return nil, &DecodeError{Encoding: "base64", Offset: len(text), Err: ErrInvalidBase64, length: true}
	}
	out := make([]byte, 0, len(text)/4*3)
	for start := 0; start < len(text); start += 4 {
		final := start+4 == len(text)
		var (
			acc  uint32
			pads int
		)
		for i := 0; i < 4; i++ {
			c := text[start+i]
			if c == padChar {
				// Only the last two positions of the final group may be padding.
				if !final || i < 2 {
					return nil, &DecodeError{Encoding: "base64", Offset: start + i, Char: c, Err: ErrInvalidBase64}
				}
				pads++
				continue
			}
			if pads > 0 {
				return nil, &DecodeError{Encoding: "base64", Offset: start + i, Char: c, Err: ErrInvalidBase64}
			}
			v := base64Index[c]
			if v < 0 {
				return nil, &DecodeError{Encoding: "base64", Offset: start + i, Char: c, Err: ErrInvalidBase64}
			}
			acc |= uint32(v) << (18 - 6*i)
		}
		if unused := acc & (1<<(8*pads) - 1); unused != 0 {
			last := start + 3 - pads
			return nil, &DecodeError{Encoding: "base64", Offset: last, Char: text[last], Err: ErrInvalidBase64}
		}
		out = append(out, byte(acc>>16))
		if pads < 2 {
			out = append(out, byte(acc>>8))
		}
		if pads < 1 {
			out = append(out, byte(acc))
		}
	}
	return out, nil
}

// HexToBase64 decodes hex text and re-encodes it as Base64 text.
func HexToBase64(text string) (string, error) {
	data, err := DecodeHex(text)
	if err != nil {
		return "", err
	}
	return EncodeBase64(data), nil
}
