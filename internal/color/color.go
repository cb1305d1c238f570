// Package color wraps console text in ANSI escape sequences.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Color wraps text with an ANSI color sequence.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

func plain(text string) string { return text }

// Palette holds the colors used for console output. A disabled palette
// returns text unchanged.
type Palette struct {
	Warn    Color // skipped lines
	Error   Color // fatal problems
	Success Color // result lines
	Label   Color // summary labels
}

// NewPalette returns a colored palette when enabled is true and a plain one
// otherwise.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{Warn: plain, Error: plain, Success: plain, Label: plain}
	}
	return Palette{
		Warn:    NewColor(yellowCode),
		Error:   NewColor(redCode),
		Success: NewColor(greenCode),
		Label:   NewColor(cyanCode),
	}
}
