package ingest

import "errors"

// Error definitions for the ingest package
var (
	// ErrFileNotFound is returned when the input file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrReadInput is returned when the input file cannot be read
	ErrReadInput = errors.New("failed to read input file")
)
