package numconv

import "strings"

// minTwosWidth is the minimum width of a two's-complement string.
const minTwosWidth = 10

// TwosComplement returns the negative two's-complement encoding of the given
// magnitude binary string.
//
// A '0' guard bit is prepended, every bit is inverted and one is added with
// carry propagation from the least significant bit. A carry out of the most
// significant bit is dropped. The result is then left-padded with '1' until it
// is at least minTwosWidth bits long.
func TwosComplement(magnitude string) (string, error) {
	if err := validateBinary(magnitude); err != nil {
		return "", err
	}
	return twosComplement(magnitude), nil
}

func twosComplement(magnitude string) string {
	bits := invert("0" + magnitude)
	increment(bits)

	if len(bits) >= minTwosWidth {
		return string(bits)
	}
	return strings.Repeat("1", minTwosWidth-len(bits)) + string(bits)
}

// invert flips every bit of s into a new buffer.
func invert(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}
	return out
}

// increment adds one to bits in place as a fixed-width unsigned number.
func increment(bits []byte) {
	carry := byte(1)
	for i := len(bits) - 1; i >= 0 && carry > 0; i-- {
		sum := bits[i] - '0' + carry
		bits[i] = '0' + sum%2
		carry = sum / 2
	}
}
