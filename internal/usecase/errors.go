package usecase

import (
	"errors"
)

// Error kinds surfaced by the track pipeline. Callers match with errors.Is;
// the HTTP adapter maps each kind to a status code.
var (
	ErrValidation       = errors.New("missing or empty required field")
	ErrUnsupportedMedia = errors.New("unsupported media type")

	ErrStorageWrite    = errors.New("object store write failed")
	ErrStorageRead     = errors.New("object store read failed")
	ErrStorageNotFound = errors.New("object not found")

	ErrMetadataWrite = errors.New("metadata store write failed")
	ErrMetadataRead  = errors.New("metadata store read failed")

	ErrNotFound = errors.New("record not found")
)

// IsNotFound returns a boolean indicating the error is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation returns a boolean indicating the error is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
