package usecase

import (
	"care-companion/internal/carerecord"
	"care-companion/internal/carerecord/repository"
	"care-companion/internal/reminder"
	"care-companion/pkg/gcalendar"
	pkgLog "care-companion/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	reminders  reminder.Service
	calendar   *gcalendar.Client // optional, nil disables calendar sync
	calendarID string
	timezone   string
}

var _ carerecord.UseCase = (*implUseCase)(nil)

// New creates a new care-record UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	reminders reminder.Service,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	if timezone == "" {
		timezone = "UTC"
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		reminders:  reminders,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
