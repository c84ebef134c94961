package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"care-companion/internal/carerecord"
	"care-companion/pkg/response"
)

// respondError picks the HTTP status for a domain error.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, carerecord.ErrProfileNotFound),
		errors.Is(err, carerecord.ErrMedicationNotFound),
		errors.Is(err, carerecord.ErrAppointmentNotFound):
		response.NotFound(c, err)
	case errors.Is(err, carerecord.ErrMissingUserID),
		errors.Is(err, carerecord.ErrMissingName),
		errors.Is(err, carerecord.ErrInvalidAIMode),
		errors.Is(err, carerecord.ErrInvalidVitalType),
		errors.Is(err, carerecord.ErrInvalidTimeOfDay),
		errors.Is(err, carerecord.ErrPastAppointment):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
