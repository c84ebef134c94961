package middleware

import (
	pkgLog "care-companion/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l      pkgLog.Logger
	apiKey string
}

// New creates the middleware set. An empty apiKey disables auth.
func New(l pkgLog.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
