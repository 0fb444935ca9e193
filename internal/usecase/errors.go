package usecase

import "errors"

var (
	// ErrNotFound: the requested record exists in no probed table.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both "no such member" and "password
	// mismatch" so the two are externally indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRateLimited: the local attempt gate tripped, or the provider kept
	// returning 429 past the retry cap.
	ErrRateLimited = errors.New("rate limited")

	// ErrConfig: the service is missing its provider credentials.
	ErrConfig = errors.New("service is not configured")
)
