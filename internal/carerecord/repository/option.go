package repository

import (
	"time"

	"care-companion/internal/model"
)

// DefaultVitalLimit caps a vitals listing when the caller sets none.
const DefaultVitalLimit = 100

// MedicationListOptions filters a medication listing.
type MedicationListOptions struct {
	ActiveOnly bool
}

// VitalListOptions filters a vitals listing. Zero times mean unbounded.
type VitalListOptions struct {
	Type  model.VitalType
	From  time.Time
	To    time.Time
	Limit int
}
