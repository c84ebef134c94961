package carerecord

import "errors"

// Domain-specific errors for the care-record package.
var (
	ErrMissingUserID       = errors.New("user id is required")
	ErrMissingName         = errors.New("name is required")
	ErrInvalidAIMode       = errors.New("invalid ai mode")
	ErrInvalidVitalType    = errors.New("invalid vital type")
	ErrInvalidTimeOfDay    = errors.New("intake time must be HH:MM")
	ErrPastAppointment     = errors.New("appointment time is in the past")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)
