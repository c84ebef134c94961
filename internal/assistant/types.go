package assistant

import (
	"time"

	"care-companion/internal/assistant/router"
)

// ProcessInput is one user turn. The query value itself is immutable:
// the usecase never rewrites it, only routes and answers it.
type ProcessInput struct {
	Query      string
	VoiceInput bool
}

// ProcessOutput is the answer to one turn plus routing metadata.
type ProcessOutput struct {
	Content string

	// Decision is what the routing engine asked for; Provider is what
	// actually answered. They differ when the cloud path failed and the
	// on-device fallback produced the reply.
	Decision Decision
	Provider router.Provider

	ProcessingTime time.Duration

	// PrivacyPreserving is true iff the final provider was on-device.
	PrivacyPreserving bool

	// FallbackError carries the cloud error that triggered a fallback,
	// informational only — the answer itself still succeeded.
	FallbackError string
}

// Decision mirrors router.Decision for callers of the usecase.
type Decision = router.Decision

// ChatTurn is one stored exchange in the conversation history.
type ChatTurn struct {
	Query     string          `json:"query"`
	Answer    string          `json:"answer"`
	Provider  router.Provider `json:"provider"`
	AskedAt   time.Time       `json:"asked_at"`
	ElapsedMS int64           `json:"elapsed_ms"`
}

// HistoryOutput is the recent conversation history for a user.
type HistoryOutput struct {
	Turns []ChatTurn
	Count int
}
