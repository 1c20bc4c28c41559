package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrRemoteNotConfigured is returned by the remote repository when no API key is set.
	ErrRemoteNotConfigured = errors.New("weather service is not configured")
)
