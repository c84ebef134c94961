package usecase

import (
	"care-companion/internal/assistant"
	"care-companion/internal/assistant/router"
	pkgLog "care-companion/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	onDevice assistant.OnDeviceEngine
	cloud    assistant.CloudEngine
	profiles assistant.ProfileSource
	history  *historyStore
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. profiles may be nil, in
// which case every query runs without a profile.
func New(
	l pkgLog.Logger,
	rt router.Router,
	onDevice assistant.OnDeviceEngine,
	cloud assistant.CloudEngine,
	profiles assistant.ProfileSource,
) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   rt,
		onDevice: onDevice,
		cloud:    cloud,
		profiles: profiles,
		history:  newHistoryStore(),
	}
}
