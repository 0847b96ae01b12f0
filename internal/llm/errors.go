package llm

import "errors"

var (
	// ErrNoCredential indicates no API key is configured for the scorer.
	ErrNoCredential = errors.New("scoring credential not configured")

	// ErrTimeout indicates the scoring request exceeded its timeout.
	ErrTimeout = errors.New("scoring request timed out")

	// ErrBadStatus indicates the scoring service answered with a
	// non-success HTTP status.
	ErrBadStatus = errors.New("scoring service returned non-success status")

	// ErrInvalidOutput indicates the response could not be parsed into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid scoring output format")

	// ErrRetryExhausted indicates all retry attempts have been used.
	ErrRetryExhausted = errors.New("scoring retry attempts exhausted")
)
