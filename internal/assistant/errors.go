package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrMissingUserID = errors.New("user id is required")
)
