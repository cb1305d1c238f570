package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by Setup
var (
	ErrEmptyLogDirectory = errors.New("log directory cannot be empty")
	ErrNilConsole        = errors.New("console writer is required")
)

const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600

	// schemaVersion is bumped when the JSON log attributes change.
	schemaVersion = 1
)

// Options configures Setup.
type Options struct {
	Tool    string
	RunID   string
	Level   slog.Level
	Console io.Writer // human-readable records, usually stderr
	LogDir  string    // when set, a per-run JSON log is written here
}

// Logger is a configured slog logger together with the resources it owns.
type Logger struct {
	*slog.Logger
	file *os.File
	path string
}

// Path returns the JSON log file path, or "" when no file is written.
func (l *Logger) Path() string {
	return l.path
}

// Close closes the JSON log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Setup builds the logger described by opts.
func Setup(opts Options) (*Logger, error) {
	if opts.Console == nil {
		return nil, ErrNilConsole
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(opts.Console, &slog.HandlerOptions{Level: opts.Level}),
	}

	out := &Logger{}
	if opts.LogDir != "" {
		f, path, err := openRunLog(opts.LogDir, opts.Tool, opts.RunID)
		if err != nil {
			return nil, err
		}
		hostname, _ := os.Hostname()
		jsonHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}).WithAttrs([]slog.Attr{
			slog.String("tool", opts.Tool),
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", schemaVersion),
			slog.String("run_id", opts.RunID),
		})
		handlers = append(handlers, jsonHandler)
		out.file = f
		out.path = path
	}

	out.Logger = slog.New(NewMultiHandler(handlers...))
	return out, nil
}

// openRunLog creates <dir>/<tool>_<host>_<timestamp>_<runID>.json.
func openRunLog(dir, tool, runID string) (*os.File, string, error) {
	if dir == "" {
		return nil, "", ErrEmptyLogDirectory
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, "", fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s_%s.json", tool, hostname, timestamp, runID))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm) // #nosec G304 - name is generated
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, path, nil
}
