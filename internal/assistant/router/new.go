package router

import (
	"context"

	"care-companion/internal/model"
	"care-companion/pkg/connectivity"
	pkgLog "care-companion/pkg/log"
)

// Router decides which provider should answer a query.
type Router interface {
	Route(ctx context.Context, query string, profile *model.ProfileSnapshot) Decision
}

// Engine is the rule-based routing engine. Pure over its inputs plus the
// injected connectivity checker and the configured default mode.
type Engine struct {
	checker     connectivity.Checker
	defaultMode model.AIMode
	l           pkgLog.Logger
}

var _ Router = (*Engine)(nil)

// New creates a routing Engine. An invalid or empty default mode falls
// back to hybrid.
func New(checker connectivity.Checker, defaultMode model.AIMode, l pkgLog.Logger) *Engine {
	if !defaultMode.Valid() {
		defaultMode = model.AIModeHybrid
	}
	return &Engine{
		checker:     checker,
		defaultMode: defaultMode,
		l:           l,
	}
}
