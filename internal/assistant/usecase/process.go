package usecase

import (
	"context"
	"time"

	"care-companion/internal/assistant"
	"care-companion/internal/assistant/router"
	"care-companion/internal/model"
)

// Process answers one user turn. It routes the query, dispatches to the
// chosen provider, and degrades any cloud failure to a guaranteed
// on-device answer — the caller never sees a failed turn. The returned
// error is nil under normal operation.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	start := time.Now()

	profile := uc.lookupProfile(ctx, sc.UserID)
	decision := uc.router.Route(ctx, input.Query, profile)

	uc.l.Infof(ctx, "%s: user=%s provider=%s reason=%s voice=%v",
		LogPrefixProcess, sc.UserID, decision.Provider, decision.Reason, input.VoiceInput)

	content, dispatchErr := uc.dispatch(ctx, decision, input.Query, profile)

	finalProvider := decision.Provider
	fallbackMsg := ""
	if dispatchErr != nil {
		// Exactly one fallback attempt, always on-device, which cannot
		// fail by contract. The original error is informational only.
		uc.l.Warnf(ctx, "%s: %s path failed, falling back on-device: %v",
			LogPrefixProcess, decision.Provider, dispatchErr)
		content = uc.onDevice.Process(ctx, input.Query, "")
		finalProvider = router.ProviderOnDevice
		fallbackMsg = dispatchErr.Error()
	}

	elapsed := time.Since(start)

	out := assistant.ProcessOutput{
		Content:           content,
		Decision:          decision,
		Provider:          finalProvider,
		ProcessingTime:    elapsed,
		PrivacyPreserving: finalProvider == router.ProviderOnDevice,
		FallbackError:     fallbackMsg,
	}

	uc.history.append(sc.UserID, assistant.ChatTurn{
		Query:     input.Query,
		Answer:    content,
		Provider:  finalProvider,
		AskedAt:   start,
		ElapsedMS: elapsed.Milliseconds(),
	})

	return out, nil
}

// dispatch invokes the provider(s) named by the decision. Only the
// cloud and hybrid paths can fail.
func (uc *implUseCase) dispatch(ctx context.Context, decision router.Decision, query string, profile *model.ProfileSnapshot) (string, error) {
	switch decision.Provider {
	case router.ProviderOnDevice:
		return uc.onDevice.Process(ctx, query, ""), nil

	case router.ProviderCloud:
		return uc.cloud.Chat(ctx, query, "")

	case router.ProviderHybrid:
		// Strictly sequential: context build, cloud answer, personalize.
		contextText := uc.onDevice.BuildContext(profile)
		answer, err := uc.cloud.Chat(ctx, query, contextText)
		if err != nil {
			return "", err
		}
		return uc.onDevice.Personalize(answer, profile), nil

	default:
		// Unreachable with the closed Provider enum; answer locally
		// rather than dropping the turn.
		uc.l.Errorf(ctx, "%s: unknown provider %q", LogPrefixProcess, decision.Provider)
		return uc.onDevice.Process(ctx, query, ""), nil
	}
}

// lookupProfile resolves the profile snapshot, treating every failure
// as "no profile": absent profiles are valid input everywhere.
func (uc *implUseCase) lookupProfile(ctx context.Context, userID string) *model.ProfileSnapshot {
	if uc.profiles == nil || userID == "" {
		return nil
	}

	profile, err := uc.profiles.Snapshot(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: profile lookup failed for %s: %v", LogPrefixProcess, userID, err)
		return nil
	}
	return profile
}
