package router

import (
	"context"

	"care-companion/internal/assistant/classifier"
	"care-companion/internal/model"
)

// Route produces a routing decision for one query. Rules are evaluated
// in strict order and the first applicable rule wins:
//
//  1. explicit on-device preference
//  2. explicit cloud preference (degrades to on-device when offline)
//  3. sensitivity denylist (hybrid mode only — an explicit cloud
//     preference is not overridden by the sensitivity check)
//  4. network unavailable
//  5. intent classification
//
// Connectivity is probed at most once per decision, and only on paths
// whose outcome depends on it — an explicit on-device preference and
// the sensitivity short-circuit never pay for a probe.
func (e *Engine) Route(ctx context.Context, query string, profile *model.ProfileSnapshot) Decision {
	mode := profile.Mode()
	if !mode.Valid() {
		mode = e.defaultMode
	}

	switch mode {
	case model.AIModeOnDevice:
		return Decision{Provider: ProviderOnDevice, Reason: ReasonUserPreference}

	case model.AIModeCloud:
		if e.checker.IsConnected(ctx) {
			return Decision{Provider: ProviderCloud, Reason: ReasonUserPreference}
		}
		return Decision{Provider: ProviderOnDevice, Reason: ReasonNetworkUnavailable}
	}

	// Hybrid mode from here on.
	if classifier.IsSensitive(query) {
		e.l.Infof(ctx, "router.Route: sensitive query, forcing on-device")
		return Decision{Provider: ProviderOnDevice, Reason: ReasonPrivacySensitive}
	}

	if !e.checker.IsConnected(ctx) {
		return Decision{Provider: ProviderOnDevice, Reason: ReasonNetworkUnavailable}
	}

	switch classifier.Classify(query) {
	case classifier.CategorySimple, classifier.CategoryReminder:
		return Decision{Provider: ProviderOnDevice, Reason: ReasonSimpleQuery}
	case classifier.CategoryHealthAnalysis:
		return Decision{Provider: ProviderHybrid, Reason: ReasonNeedsPreprocessing}
	default:
		// medical_advice, emotional_support, complex
		return Decision{Provider: ProviderCloud, Reason: ReasonComplexQuery}
	}
}
