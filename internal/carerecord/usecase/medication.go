package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"care-companion/internal/carerecord"
	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
	"care-companion/internal/reminder"
)

// CreateMedication stores a medication and schedules a reminder for the
// next intake time. Reminder scheduling is best-effort: a scheduling
// failure is logged, the medication is still saved.
func (uc *implUseCase) CreateMedication(ctx context.Context, sc model.Scope, input carerecord.CreateMedicationInput) (model.Medication, error) {
	if sc.UserID == "" {
		return model.Medication{}, carerecord.ErrMissingUserID
	}
	if input.Name == "" {
		return model.Medication{}, carerecord.ErrMissingName
	}
	for _, t := range input.Times {
		if _, err := time.Parse("15:04", t); err != nil {
			return model.Medication{}, carerecord.ErrInvalidTimeOfDay
		}
	}

	now := time.Now()
	m := model.Medication{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Name:      input.Name,
		Dosage:    input.Dosage,
		Times:     input.Times,
		Notes:     input.Notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateMedication(ctx, m); err != nil {
		return model.Medication{}, fmt.Errorf("failed to create medication: %w", err)
	}

	if at, ok := uc.nextIntake(now, m.Times); ok {
		msg := fmt.Sprintf("Time to take %s", m.Name)
		if m.Dosage != "" {
			msg = fmt.Sprintf("Time to take %s (%s)", m.Name, m.Dosage)
		}
		_, err := uc.reminders.Schedule(ctx, reminder.Reminder{
			UserID:  sc.UserID,
			Kind:    reminder.KindMedication,
			RefID:   m.ID,
			Message: msg,
			At:      at,
		})
		if err != nil {
			uc.l.Warnf(ctx, "carerecord.CreateMedication: reminder scheduling failed for %s: %v", m.ID, err)
		}
	}

	uc.l.Infof(ctx, "carerecord.CreateMedication: user=%s id=%s name=%s", sc.UserID, m.ID, m.Name)
	return m, nil
}

// ListMedications returns every medication recorded for the user,
// active or not.
func (uc *implUseCase) ListMedications(ctx context.Context, sc model.Scope) ([]model.Medication, error) {
	if sc.UserID == "" {
		return nil, carerecord.ErrMissingUserID
	}

	meds, err := uc.repo.ListMedications(ctx, sc.UserID, repository.MedicationListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

// DeleteMedication removes a medication by ID.
func (uc *implUseCase) DeleteMedication(ctx context.Context, sc model.Scope, id string) error {
	if sc.UserID == "" {
		return carerecord.ErrMissingUserID
	}

	err := uc.repo.DeleteMedication(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return carerecord.ErrMedicationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	uc.l.Infof(ctx, "carerecord.DeleteMedication: user=%s id=%s", sc.UserID, id)
	return nil
}

// nextIntake returns the earliest upcoming intake time in the service
// timezone, scanning today then tomorrow.
func (uc *implUseCase) nextIntake(now time.Time, times []string) (time.Time, bool) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	var next time.Time
	for _, t := range times {
		hm, err := time.Parse("15:04", t)
		if err != nil {
			continue
		}
		at := time.Date(local.Year(), local.Month(), local.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)
		if !at.After(local) {
			at = at.AddDate(0, 0, 1)
		}
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}
