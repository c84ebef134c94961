package carerecord

import (
	"context"

	"care-companion/internal/model"
)

// UseCase defines the business logic interface for the care-record
// domain: the care profile plus medications, vitals, and appointments.
type UseCase interface {
	// Profile
	SaveProfile(ctx context.Context, sc model.Scope, input SaveProfileInput) (model.CareProfile, error)
	GetProfile(ctx context.Context, sc model.Scope) (model.CareProfile, error)

	// Snapshot assembles the read-only view the assistant consumes:
	// profile fields plus active medications.
	Snapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error)

	// Medications
	CreateMedication(ctx context.Context, sc model.Scope, input CreateMedicationInput) (model.Medication, error)
	ListMedications(ctx context.Context, sc model.Scope) ([]model.Medication, error)
	DeleteMedication(ctx context.Context, sc model.Scope, id string) error

	// Vitals
	LogVital(ctx context.Context, sc model.Scope, input LogVitalInput) (model.VitalReading, error)
	ListVitals(ctx context.Context, sc model.Scope, input ListVitalsInput) ([]model.VitalReading, error)

	// Appointments
	CreateAppointment(ctx context.Context, sc model.Scope, input CreateAppointmentInput) (model.Appointment, error)
	ListAppointments(ctx context.Context, sc model.Scope) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, sc model.Scope, id string) error
}
