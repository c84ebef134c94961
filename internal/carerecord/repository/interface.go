package repository

import (
	"context"

	"care-companion/internal/model"
)

// Repository is the persistence interface for care records.
type Repository interface {
	// Profile
	UpsertProfile(ctx context.Context, p model.CareProfile) error
	GetProfile(ctx context.Context, userID string) (model.CareProfile, error)

	// Medications
	CreateMedication(ctx context.Context, m model.Medication) error
	ListMedications(ctx context.Context, userID string, opt MedicationListOptions) ([]model.Medication, error)
	GetMedication(ctx context.Context, userID, id string) (model.Medication, error)
	DeleteMedication(ctx context.Context, userID, id string) error

	// Vitals
	CreateVital(ctx context.Context, v model.VitalReading) error
	ListVitals(ctx context.Context, userID string, opt VitalListOptions) ([]model.VitalReading, error)

	// Appointments
	CreateAppointment(ctx context.Context, a model.Appointment) error
	ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error)
	GetAppointment(ctx context.Context, userID, id string) (model.Appointment, error)
	DeleteAppointment(ctx context.Context, userID, id string) error
}
