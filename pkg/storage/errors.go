package storage

import "errors"

var (
	// ErrNotFound indicates no live entry exists under the requested key
	ErrNotFound = errors.New("storage.not_found")

	// ErrEmptyKey indicates an operation was attempted with an empty key
	ErrEmptyKey = errors.New("storage.empty_key")

	// ErrInvalidEntry indicates a stored entry could not be decoded
	ErrInvalidEntry = errors.New("storage.invalid_entry")

	// ErrUnavailable indicates the backing store could not be reached
	ErrUnavailable = errors.New("storage.unavailable")
)
