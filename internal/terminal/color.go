package terminal

import "os"

// ColorPreference holds command-line or configuration color choices.
type ColorPreference struct {
	Force   bool // Force color output regardless of environment
	Disable bool // Disable color output regardless of environment
}

// UseColor reports whether output written to w should be colored.
//
// Priority, highest first:
//  1. explicit preference (Force, then Disable)
//  2. CLICOLOR_FORCE set to a truthy value
//  3. NO_COLOR present, with any value
//  4. CI environment or w not a terminal: no color
//  5. TERM must name a color-capable terminal
//  6. CLICOLOR, when set, decides; otherwise color is on
func UseColor(w any, pref ColorPreference) bool {
	if pref.Force {
		return true
	}
	if pref.Disable {
		return false
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if IsCIEnvironment() || !IsTerminal(w) || !termSupportsColor() {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}
