// Package numconv converts signed integers to binary and hexadecimal text.
//
// Positive values are rendered as plain magnitude binary and nibble-grouped
// hexadecimal. Negative values go through a sign-extended two's-complement
// encoding whose width is at least minTwosWidth bits, and are grouped into
// hexadecimal after sign-padding to a multiple of negativeHexGroup bits.
// Both widths are part of the output format and must not be changed.
package numconv

import "fmt"

// ToBinary returns the magnitude of n in base 2, most significant bit first,
// without sign or leading zeros. Zero is returned as "0".
func ToBinary(n int64) string {
	mag := magnitude(n)
	if mag == 0 {
		return "0"
	}

	// 64 bits is enough for any uint64 magnitude.
	var buf [64]byte
	i := len(buf)
	for mag > 0 {
		i--
		buf[i] = '0' + byte(mag%2)
		mag /= 2
	}
	return string(buf[i:])
}

// magnitude returns |n| as uint64 so that math.MinInt64 does not overflow.
func magnitude(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return uint64(-(n + 1)) + 1
}

// validateBinary checks that s is a non-empty string of '0' and '1'.
func validateBinary(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty input", ErrInvalidBinary)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: %q has non-binary character at offset %d", ErrInvalidBinary, s, i)
		}
	}
	return nil
}
