package narrative

import "errors"

var (
	// ErrServiceUnavailable indicates the reasoning service is unreachable
	ErrServiceUnavailable = errors.New("reasoning service unavailable")

	// ErrInvalidResponse indicates the reasoning service returned an
	// unparseable payload
	ErrInvalidResponse = errors.New("invalid response from reasoning service")
)
