package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrorType classifies errors that stop a tool before it produces results.
type ErrorType string

const (
	// ErrorTypeInvalidArguments represents command-line usage errors
	ErrorTypeInvalidArguments ErrorType = "invalid_arguments"
	// ErrorTypeConfigParsing represents configuration loading failures
	ErrorTypeConfigParsing ErrorType = "config_parsing_failed"
	// ErrorTypeLogSetup represents log handler or log file failures
	ErrorTypeLogSetup ErrorType = "log_setup_failed"
	// ErrorTypeInputAccess represents input file open or read failures
	ErrorTypeInputAccess ErrorType = "input_access_failed"
	// ErrorTypeOutputWrite represents results or metrics file write failures
	ErrorTypeOutputWrite ErrorType = "output_write_failed"
)

// StartupError is an error that aborts a run.
type StartupError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Unwrap returns the wrapped cause.
func (e *StartupError) Unwrap() error {
	return e.Err
}

// HandleStartupError writes a structured report of e to w and logs it.
func HandleStartupError(w io.Writer, logger *slog.Logger, e *StartupError) {
	// Build the block first so concurrent writers cannot interleave it.
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", e.Type)
	if e.Component != "" {
		fmt.Fprintf(&sb, "  Component: %s\n", e.Component)
	}
	fmt.Fprintf(&sb, "  Details: %s\n", e.Message)
	if e.Err != nil {
		fmt.Fprintf(&sb, "  Cause: %v\n", e.Err)
	}
	if e.RunID != "" {
		fmt.Fprintf(&sb, "  Run ID: %s\n", e.RunID)
	}
	_, _ = io.WriteString(w, sb.String())

	if logger != nil {
		logger.Error("Run aborted",
			"error_type", string(e.Type),
			"error_message", e.Message,
			"component", e.Component,
			"error", e.Err,
			"run_id", e.RunID)
	}
}
