// Package terminal decides whether console output is interactive and whether
// it should carry ANSI colors.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"CIRCLECI",               // Circle CI
	"BUILDKITE",              // Buildkite
	"TF_BUILD",               // Azure DevOps
}

// colorTerminals lists TERM values (or prefixes) known to support basic colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"ansi",
	"linux",
	"cygwin",
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - descriptors fit in int
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false or CI=0 does not indicate a CI environment
		if envVar == "CI" {
			return !isFalsy(value)
		}
		return true
	}
	return false
}

// termSupportsColor checks the TERM environment variable.
func termSupportsColor() bool {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if name == "" || name == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if name == colorTerm || strings.HasPrefix(name, colorTerm+"-") {
			return true
		}
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func isFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no":
		return true
	default:
		return false
	}
}
