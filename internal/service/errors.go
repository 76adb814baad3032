package service

import "errors"

// Validation errors returned by the registry services before any repository
// call is made.
var (
	// ErrEmptyDirectoryPath is returned when registering or updating a
	// directory with an empty filesystem path.
	ErrEmptyDirectoryPath = errors.New("directory path must not be empty")

	// ErrEmptyDirectoryName is returned when registering a directory with
	// an empty display name.
	ErrEmptyDirectoryName = errors.New("directory name must not be empty")

	// ErrEmptyAccountName is returned when storing an account with an
	// empty display name.
	ErrEmptyAccountName = errors.New("account name must not be empty")

	// ErrEmptyAccountToken is returned when storing an account with an
	// empty API token.
	ErrEmptyAccountToken = errors.New("account token must not be empty")

	// ErrEmptyAccountBaseURL is returned when storing an account with an
	// empty base URL.
	ErrEmptyAccountBaseURL = errors.New("account base URL must not be empty")
)
