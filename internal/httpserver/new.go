package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "care-companion/internal/assistant/delivery/http"
	careHTTP "care-companion/internal/carerecord/delivery/http"
	"care-companion/internal/middleware"
	pkgLog "care-companion/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domains
	assistantHandler assistantHTTP.Handler
	careHandler      careHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	AssistantHandler assistantHTTP.Handler
	CareHandler      careHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		careHandler:      cfg.CareHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.careHandler == nil {
		return errors.New("care handler is required")
	}
	return nil
}
