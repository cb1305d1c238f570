package numconv

import "fmt"

// Result holds the textual renditions of one decimal value.
type Result struct {
	Decimal int64
	Binary  string
	Hex     string
}

// String formats the result as a report line.
func (r Result) String() string {
	return fmt.Sprintf("Decimal: %d, Binary: %s, Hex: %s", r.Decimal, r.Binary, r.Hex)
}

// Negative reports whether the value took the two's-complement path.
func (r Result) Negative() bool {
	return r.Decimal < 0
}

// Convert runs n through the full pipeline. Zero maps to "0" for both
// renditions; negative values are encoded in two's complement before
// hexadecimal grouping.
func Convert(n int64) Result {
	switch {
	case n == 0:
		return Result{Decimal: 0, Binary: "0", Hex: "0"}
	case n > 0:
		binary := ToBinary(n)
		return Result{Decimal: n, Binary: binary, Hex: positiveHex(binary)}
	default:
		// ToBinary output is always well formed, so the unchecked
		// variants are safe here.
		twos := twosComplement(ToBinary(n))
		return Result{Decimal: n, Binary: twos, Hex: negativeHex(twos)}
	}
}

// ConvertAll converts every value in order.
func ConvertAll(values []int64) []Result {
	results := make([]Result, len(values))
	for i, v := range values {
		results[i] = Convert(v)
	}
	return results
}
