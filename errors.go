package ingest

import "errors"

var (
	// ErrMissingInput aborts a run before any item is processed
	ErrMissingInput = errors.New("required input does not exist")

	// ErrNoInputFiles is returned when discovery finds nothing to ingest
	ErrNoInputFiles = errors.New("no input files found")

	ErrManifestWrite = errors.New("manifest write failed")
	ErrManifestRead  = errors.New("manifest read failed")

	ErrSoxNotFound   = errors.New("sox not found or not executable")
	ErrInvalidFormat = errors.New("invalid audio format")
)
