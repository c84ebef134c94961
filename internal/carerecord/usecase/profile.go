package usecase

import (
	"context"
	"errors"
	"fmt"

	"care-companion/internal/carerecord"
	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// SaveProfile creates or replaces the care profile for the scoped user.
func (uc *implUseCase) SaveProfile(ctx context.Context, sc model.Scope, input carerecord.SaveProfileInput) (model.CareProfile, error) {
	if sc.UserID == "" {
		return model.CareProfile{}, carerecord.ErrMissingUserID
	}
	if input.Name == "" {
		return model.CareProfile{}, carerecord.ErrMissingName
	}

	mode := input.AIMode
	if mode == "" {
		mode = model.AIModeHybrid
	}
	if !mode.Valid() {
		return model.CareProfile{}, carerecord.ErrInvalidAIMode
	}

	p := model.CareProfile{
		UserID:     sc.UserID,
		Name:       input.Name,
		Age:        input.Age,
		Conditions: input.Conditions,
		Allergies:  input.Allergies,
		AIMode:     mode,
	}

	if err := uc.repo.UpsertProfile(ctx, p); err != nil {
		return model.CareProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.l.Infof(ctx, "carerecord.SaveProfile: user=%s mode=%s", sc.UserID, mode)
	return p, nil
}

// GetProfile loads the scoped user's care profile.
func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.CareProfile, error) {
	if sc.UserID == "" {
		return model.CareProfile{}, carerecord.ErrMissingUserID
	}

	p, err := uc.repo.GetProfile(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.CareProfile{}, carerecord.ErrProfileNotFound
	}
	if err != nil {
		return model.CareProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Snapshot assembles the read-only profile view the assistant consumes.
// A missing profile yields (nil, nil): the assistant runs with defaults.
// A medication listing failure degrades to a snapshot without
// medications rather than failing the query.
func (uc *implUseCase) Snapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	if userID == "" {
		return nil, nil
	}

	p, err := uc.repo.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	snapshot := &model.ProfileSnapshot{
		Name:       p.Name,
		Age:        p.Age,
		Conditions: p.Conditions,
		Allergies:  p.Allergies,
		AIMode:     p.AIMode,
	}

	meds, err := uc.repo.ListMedications(ctx, userID, repository.MedicationListOptions{ActiveOnly: true})
	if err != nil {
		uc.l.Warnf(ctx, "carerecord.Snapshot: medication listing failed for %s: %v", userID, err)
		return snapshot, nil
	}
	for _, m := range meds {
		snapshot.Medications = append(snapshot.Medications, model.ActiveMedication{
			Name:   m.Name,
			Dosage: m.Dosage,
		})
	}

	return snapshot, nil
}
