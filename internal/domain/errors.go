package domain

import "errors"

// Failure taxonomy for reading a manifest version. Callers match with errors.Is.
var (
	// ErrProcessFailure is returned when the manifest reader command is missing,
	// cannot be executed, or exits with a non-zero status.
	ErrProcessFailure = errors.New("manifest reader process failed")
	// ErrDecodeFailure is returned when the reader output is not a structured document.
	ErrDecodeFailure = errors.New("manifest output could not be decoded")
	// ErrMissingField is returned when the decoded manifest has no usable version field.
	ErrMissingField = errors.New("manifest is missing a version field")
)
