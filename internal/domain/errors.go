package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrMissingImage = errors.New("image is required")
)

// RateLimitError rejects a generation attempt before any external call is
// made. Reason is the human-readable text shown to the user.
type RateLimitError struct {
	Reason string
}

func (e *RateLimitError) Error() string { return e.Reason }
