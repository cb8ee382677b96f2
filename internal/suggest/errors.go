package suggest

import "errors"

var (
	// ErrNoCredentials indicates no API key is configured.
	ErrNoCredentials = errors.New("suggestion api key not configured")

	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("suggestion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("suggestion request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into
	// the expected shape.
	ErrInvalidOutput = errors.New("invalid suggestion output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("suggestion retry attempts exhausted")
)
