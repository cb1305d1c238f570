// Package ingest reads line-oriented text input and filters it into typed
// values, recording every line that had to be skipped.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Input is the raw content of an input file.
type Input struct {
	Path  string
	Lines []string
}

// TotalLines returns the number of lines read, before any filtering.
func (in *Input) TotalLines() int {
	return len(in.Lines)
}

// ReadFile reads all lines of the file at path.
func ReadFile(path string) (*Input, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	return &Input{Path: path, Lines: lines}, nil
}

// ReadLines splits r into lines with the line terminators removed. A
// trailing newline does not produce an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
