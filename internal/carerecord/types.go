package carerecord

import (
	"time"

	"care-companion/internal/model"
)

// SaveProfileInput creates or replaces the care profile for the scoped user.
type SaveProfileInput struct {
	Name       string
	Age        int
	Conditions []string
	Allergies  []string
	AIMode     model.AIMode // empty keeps the service default
}

// CreateMedicationInput adds a medication with its daily intake times.
type CreateMedicationInput struct {
	Name   string
	Dosage string
	Times  []string // "HH:MM", local time
	Notes  string
}

// LogVitalInput records one vital-sign measurement.
type LogVitalInput struct {
	Type       model.VitalType
	Value      float64
	Secondary  float64 // diastolic for blood pressure
	Unit       string
	Notes      string
	RecordedAt time.Time // zero means now
}

// ListVitalsInput filters the vitals listing.
type ListVitalsInput struct {
	Type  model.VitalType // empty matches all types
	From  time.Time
	To    time.Time
	Limit int // 0 means the repository default
}

// CreateAppointmentInput schedules a medical appointment.
type CreateAppointmentInput struct {
	Title        string
	Location     string
	Doctor       string
	Notes        string
	StartsAt     time.Time
	RemindBefore time.Duration // 0 disables the reminder
	SyncCalendar bool
}
