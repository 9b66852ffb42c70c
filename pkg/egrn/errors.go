package egrn

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := processor.ProcessDirectory(ctx, src, dst)
//	if errors.Is(err, egrn.ErrInvalidInput) {
//	    // source or target directory is missing
//	}
var (
	// ErrInvalidInput indicates a top-level input (source or target directory) is unusable.
	// It is the only condition that stops a batch before any archive is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoXMLMember indicates an archive contains no member ending in .xml.
	ErrNoXMLMember = errors.New("no XML member")

	// ErrNoIdentifier indicates the XML document yields no cadastral number.
	ErrNoIdentifier = errors.New("no identifier")

	// ErrOutputExists indicates a destination file is already present and the
	// collision policy forbids replacing it.
	ErrOutputExists = errors.New("output already exists")

	// ErrUnsafeIdentifier indicates an identifier that cannot be used as a file name.
	ErrUnsafeIdentifier = errors.New("identifier is not a valid file name")

	// ErrNothingToDo indicates the input directory holds no files to process.
	ErrNothingToDo = errors.New("no input files found")

	// ErrPartialBatch indicates a batch finished but at least one file errored.
	ErrPartialBatch = errors.New("batch completed with errors")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, ErrPartialBatch):
		return ExitPartialBatch
	case errors.Is(err, ErrNothingToDo):
		return ExitNothingToDo
	}

	if isUsageError(err) {
		return ExitUsageError
	}

	return ExitGeneralError
}
