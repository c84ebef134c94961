package router

// Provider identifies which engine answers a query. Closed enumeration:
// the dispatch site switches exhaustively over these three values, so a
// fourth provider is a compile-visible change everywhere it matters.
type Provider string

const (
	ProviderOnDevice Provider = "on_device"
	ProviderCloud    Provider = "cloud"
	ProviderHybrid   Provider = "hybrid"
)

// Reason explains why a provider was chosen.
type Reason string

const (
	ReasonUserPreference     Reason = "user_preference"
	ReasonPrivacySensitive   Reason = "privacy_sensitive"
	ReasonNetworkUnavailable Reason = "network_unavailable"
	ReasonSimpleQuery        Reason = "simple_query"
	ReasonComplexQuery       Reason = "complex_query"
	ReasonNeedsPreprocessing Reason = "needs_preprocessing"
)

// Decision is the routing engine's output for one query. Produced fresh
// per query, never persisted.
type Decision struct {
	Provider Provider `json:"provider"`
	Reason   Reason   `json:"reason"`
}
