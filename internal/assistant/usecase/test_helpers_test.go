package usecase_test

import (
	"context"

	"care-companion/internal/assistant"
	"care-companion/internal/assistant/ondevice"
	"care-companion/internal/assistant/router"
	"care-companion/internal/model"
	"care-companion/pkg/connectivity"
	pkgLog "care-companion/pkg/log"
)

// mockCloud is a cloud engine with a pluggable chat function.
type mockCloud struct {
	chatFunc func(query, contextText string) (string, error)
	calls    int
}

func (m *mockCloud) Chat(ctx context.Context, query string, contextText string) (string, error) {
	m.calls++
	if m.chatFunc != nil {
		return m.chatFunc(query, contextText)
	}
	return "cloud answer", nil
}

var _ assistant.CloudEngine = (*mockCloud)(nil)

// mockProfiles serves a fixed snapshot.
type mockProfiles struct {
	snapshotFunc func(userID string) (*model.ProfileSnapshot, error)
}

func (m *mockProfiles) Snapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	if m.snapshotFunc != nil {
		return m.snapshotFunc(userID)
	}
	return nil, nil
}

var _ assistant.ProfileSource = (*mockProfiles)(nil)

// newRouter wires the real routing engine with a static connectivity
// answer, so usecase tests exercise the full decision procedure.
func newRouter(connected bool) router.Router {
	return router.New(connectivity.Static(connected), model.AIModeHybrid, pkgLog.NewNop())
}

func newOnDevice() assistant.OnDeviceEngine {
	return ondevice.New()
}
