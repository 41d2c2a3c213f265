package repositories

import "errors"

var (
	// ErrNoImageReturned means the service answered but no candidate part
	// carried an inline image, typically because a safety filter dropped
	// it or the input was unprocessable.
	ErrNoImageReturned = errors.New("no image returned by the generation service")

	// ErrQuotaExhausted wraps quota and rate-limit failures so the API
	// layer can answer 429 instead of a generic upstream error.
	ErrQuotaExhausted = errors.New("generation service quota exhausted")

	// ErrSessionNotFound is returned by session lookups for unknown or
	// discarded sessions.
	ErrSessionNotFound = errors.New("session not found")
)
