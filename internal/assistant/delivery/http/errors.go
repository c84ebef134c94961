package http

import (
	"errors"

	"care-companion/internal/assistant"
)

var errBadRequest = errors.New("invalid request")

// mapError converts domain errors into client-facing ones.
func (h *handler) mapError(err error) error {
	if errors.Is(err, assistant.ErrMissingUserID) {
		return assistant.ErrMissingUserID
	}
	return errBadRequest
}
