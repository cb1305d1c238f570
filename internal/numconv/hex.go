package numconv

import "strings"

// negativeHexGroup is the width negative encodings are sign-padded to before
// nibble grouping.
const negativeHexGroup = 40

const hexDigits = "0123456789ABCDEF"

var nibbleTable = map[string]byte{
	"0000": '0', "0001": '1', "0010": '2', "0011": '3',
	"0100": '4', "0101": '5', "0110": '6', "0111": '7',
	"1000": '8', "1001": '9', "1010": 'A', "1011": 'B',
	"1100": 'C', "1101": 'D', "1110": 'E', "1111": 'F',
}

// PositiveBinaryToHex converts a non-negative binary string to uppercase
// hexadecimal. The input is zero-padded on the left to a whole number of
// nibbles, so the result has ceil(len(binary)/4) digits.
func PositiveBinaryToHex(binary string) (string, error) {
	if err := validateBinary(binary); err != nil {
		return "", err
	}
	return positiveHex(binary), nil
}

func positiveHex(binary string) string {
	width := (len(binary) + 3) / 4 * 4
	padded := strings.Repeat("0", width-len(binary)) + binary

	var sb strings.Builder
	sb.Grow(width / 4)
	for i := 0; i < width; i += 4 {
		sb.WriteByte(nibbleTable[padded[i:i+4]])
	}
	return sb.String()
}

// NegativeBinaryToHex converts a two's-complement binary string to uppercase
// hexadecimal. The input is left-padded with '1' until its length is a
// multiple of negativeHexGroup, then read four bits at a time.
func NegativeBinaryToHex(binary string) (string, error) {
	if err := validateBinary(binary); err != nil {
		return "", err
	}
	return negativeHex(binary), nil
}

func negativeHex(binary string) string {
	width := len(binary)
	if rem := width % negativeHexGroup; rem != 0 {
		width += negativeHexGroup - rem
	}
	padded := strings.Repeat("1", width-len(binary)) + binary

	var sb strings.Builder
	sb.Grow(width / 4)
	for i := 0; i < width; i += 4 {
		value := 0
		for _, bit := range padded[i : i+4] {
			value = value<<1 | int(bit-'0')
		}
		sb.WriteByte(hexDigits[value])
	}
	return sb.String()
}
