package weather

import "errors"

// Domain-specific errors for the weather package.
var (
	ErrEmptyLocation = errors.New("location is empty")
	// ErrFetchFailed wraps the remote error when no cached snapshot can stand in.
	ErrFetchFailed = errors.New("failed to fetch weather")
)
