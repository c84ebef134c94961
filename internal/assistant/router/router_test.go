package router_test

import (
	"context"
	"testing"

	"care-companion/internal/assistant/router"
	"care-companion/internal/model"
	"care-companion/pkg/connectivity"
	pkgLog "care-companion/pkg/log"
)

func newEngine(connected bool) *router.Engine {
	return router.New(connectivity.Static(connected), model.AIModeHybrid, pkgLog.NewNop())
}

func profileWith(mode model.AIMode) *model.ProfileSnapshot {
	return &model.ProfileSnapshot{Name: "Maria Lopez", Age: 78, AIMode: mode}
}

// countingChecker records how often the connectivity probe runs.
type countingChecker struct {
	connected bool
	calls     int
}

func (c *countingChecker) IsConnected(ctx context.Context) bool {
	c.calls++
	return c.connected
}

func TestRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("On-Device Preference Always Wins", func(t *testing.T) {
		for _, connected := range []bool{true, false} {
			for _, q := range []string{"", "cual es mi contrasena", "hola", "analiza mi presion"} {
				d := newEngine(connected).Route(ctx, q, profileWith(model.AIModeOnDevice))
				if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonUserPreference {
					t.Errorf("query %q connected=%v: got %+v", q, connected, d)
				}
			}
		}
	})

	t.Run("Cloud Preference Online", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "hola", profileWith(model.AIModeCloud))
		if d.Provider != router.ProviderCloud || d.Reason != router.ReasonUserPreference {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Cloud Preference Offline Degrades", func(t *testing.T) {
		d := newEngine(false).Route(ctx, "hola", profileWith(model.AIModeCloud))
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonNetworkUnavailable {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Cloud Preference Bypasses Sensitivity Check", func(t *testing.T) {
		// Observed product behavior: an explicit cloud preference wins
		// over the denylist. Pinned here so a deliberate policy change
		// shows up as a test failure.
		d := newEngine(true).Route(ctx, "mi contrasena del banco", profileWith(model.AIModeCloud))
		if d.Provider != router.ProviderCloud || d.Reason != router.ReasonUserPreference {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Hybrid Sensitive Forces On-Device", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "cual es mi contrasena del banco", profileWith(model.AIModeHybrid))
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonPrivacySensitive {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Hybrid Offline Precedes Classification", func(t *testing.T) {
		d := newEngine(false).Route(ctx, "tengo ansiedad y no puedo dormir", profileWith(model.AIModeHybrid))
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonNetworkUnavailable {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Hybrid Emotional Query Goes To Cloud", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "tengo ansiedad y no puedo dormir", profileWith(model.AIModeHybrid))
		if d.Provider != router.ProviderCloud || d.Reason != router.ReasonComplexQuery {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Hybrid Health Analysis Goes Hybrid", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "analiza la tendencia de mi presion arterial de esta semana", profileWith(model.AIModeHybrid))
		if d.Provider != router.ProviderHybrid || d.Reason != router.ReasonNeedsPreprocessing {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Empty Query Is Simple", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "", profileWith(model.AIModeHybrid))
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonSimpleQuery {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Nil Profile Defaults To Hybrid", func(t *testing.T) {
		d := newEngine(true).Route(ctx, "hola", nil)
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonSimpleQuery {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("Connectivity Probed At Most Once", func(t *testing.T) {
		cases := []struct {
			name   string
			query  string
			mode   model.AIMode
			probes int
		}{
			{"on-device preference skips probe", "hola", model.AIModeOnDevice, 0},
			{"hybrid sensitive skips probe", "mi contrasena del banco", model.AIModeHybrid, 0},
			{"cloud preference probes once", "hola", model.AIModeCloud, 1},
			{"hybrid classification probes once", "tengo ansiedad y no puedo dormir", model.AIModeHybrid, 1},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				checker := &countingChecker{connected: true}
				e := router.New(checker, model.AIModeHybrid, pkgLog.NewNop())
				e.Route(ctx, tc.query, profileWith(tc.mode))
				if checker.calls != tc.probes {
					t.Errorf("probe ran %d times, want %d", checker.calls, tc.probes)
				}
			})
		}
	})

	t.Run("Invalid Default Mode Falls Back To Hybrid", func(t *testing.T) {
		e := router.New(connectivity.Static(true), model.AIMode("bogus"), pkgLog.NewNop())
		d := e.Route(ctx, "mi contrasena", nil)
		if d.Provider != router.ProviderOnDevice || d.Reason != router.ReasonPrivacySensitive {
			t.Errorf("got %+v", d)
		}
	})
}
