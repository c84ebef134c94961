// Package connectivity probes whether the network path to the cloud
// provider is usable. The checker is injected wherever routing decisions
// are made so tests can simulate both connectivity states.
package connectivity

import (
	"context"
	"net/http"
	"time"
)

// Checker reports current network availability. Queried fresh at each
// routing decision, never cached across requests.
type Checker interface {
	IsConnected(ctx context.Context) bool
}

const defaultProbeTimeout = 3 * time.Second

// HTTPChecker probes reachability with a HEAD request against a fixed URL.
type HTTPChecker struct {
	probeURL   string
	httpClient *http.Client
}

var _ Checker = (*HTTPChecker)(nil)

// NewHTTPChecker creates a checker that probes the given URL. An empty
// timeout falls back to 3 seconds.
func NewHTTPChecker(probeURL string, timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &HTTPChecker{
		probeURL:   probeURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsConnected reports whether the probe URL answered at all. Any HTTP
// status counts as connected; only transport failures count as offline.
func (c *HTTPChecker) IsConnected(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.probeURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return true
}

// Static is a fixed-answer checker for tests and forced-offline setups.
type Static bool

var _ Checker = Static(false)

// IsConnected returns the fixed answer.
func (s Static) IsConnected(ctx context.Context) bool {
	return bool(s)
}
