package assistant

import (
	"context"

	"care-companion/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Process answers one user query, routing it on-device, to the
	// cloud, or through the hybrid pipeline. Cloud failures degrade to
	// an on-device answer; under normal operation the returned error is
	// always nil.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// History returns the recent conversation turns for a user.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)
}

// OnDeviceEngine is the on-device language capability. All methods are
// non-failing by contract: they always produce some text.
type OnDeviceEngine interface {
	// Process produces a reply for a query using only local knowledge.
	Process(ctx context.Context, query string, profileContext string) string

	// BuildContext summarizes the profile (conditions, allergies,
	// active medications) into a short natural-language paragraph.
	BuildContext(profile *model.ProfileSnapshot) string

	// Personalize prepends a time-of-day greeting and the user's first
	// name to a reply.
	Personalize(text string, profile *model.ProfileSnapshot) string
}

// CloudEngine is the cloud language-model capability. Chat fails on
// network, auth, or rate-limit errors; callers own the fallback.
type CloudEngine interface {
	Chat(ctx context.Context, query string, contextText string) (string, error)
}

// ProfileSource resolves the care profile snapshot for a user. A lookup
// failure is not fatal to the assistant: it proceeds without a profile.
type ProfileSource interface {
	Snapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error)
}
