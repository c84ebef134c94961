package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/assistant"
	pkgLog "care-companion/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
