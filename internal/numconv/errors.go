package numconv

import "errors"

// ErrInvalidBinary is returned when a binary string is empty or contains a
// character other than '0' or '1'.
var ErrInvalidBinary = errors.New("invalid binary string")
