package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"care-companion/internal/carerecord"
	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// LogVital records a single vital-sign reading. A zero RecordedAt means
// the reading was taken now.
func (uc *implUseCase) LogVital(ctx context.Context, sc model.Scope, input carerecord.LogVitalInput) (model.VitalReading, error) {
	if sc.UserID == "" {
		return model.VitalReading{}, carerecord.ErrMissingUserID
	}
	if !validVitalType(input.Type) {
		return model.VitalReading{}, carerecord.ErrInvalidVitalType
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	v := model.VitalReading{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Type:       input.Type,
		Value:      input.Value,
		Secondary:  input.Secondary,
		Unit:       input.Unit,
		Notes:      input.Notes,
		RecordedAt: recordedAt,
	}

	if err := uc.repo.CreateVital(ctx, v); err != nil {
		return model.VitalReading{}, fmt.Errorf("failed to log vital: %w", err)
	}

	uc.l.Infof(ctx, "carerecord.LogVital: user=%s type=%s value=%.1f", sc.UserID, v.Type, v.Value)
	return v, nil
}

// ListVitals returns readings newest first, filtered by type and time
// range when given.
func (uc *implUseCase) ListVitals(ctx context.Context, sc model.Scope, input carerecord.ListVitalsInput) ([]model.VitalReading, error) {
	if sc.UserID == "" {
		return nil, carerecord.ErrMissingUserID
	}
	if input.Type != "" && !validVitalType(input.Type) {
		return nil, carerecord.ErrInvalidVitalType
	}

	vitals, err := uc.repo.ListVitals(ctx, sc.UserID, repository.VitalListOptions{
		Type:  input.Type,
		From:  input.From,
		To:    input.To,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	return vitals, nil
}

func validVitalType(t model.VitalType) bool {
	switch t {
	case model.VitalBloodPressure, model.VitalHeartRate, model.VitalGlucose,
		model.VitalOxygen, model.VitalWeight, model.VitalTemperature:
		return true
	}
	return false
}
