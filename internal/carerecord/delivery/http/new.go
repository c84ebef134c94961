package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/carerecord"
	pkgLog "care-companion/pkg/log"
)

// Handler is the public interface for the care-record HTTP delivery layer.
type Handler interface {
	SaveProfile(c *gin.Context)
	GetProfile(c *gin.Context)

	CreateMedication(c *gin.Context)
	ListMedications(c *gin.Context)
	DeleteMedication(c *gin.Context)

	LogVital(c *gin.Context)
	ListVitals(c *gin.Context)

	CreateAppointment(c *gin.Context)
	ListAppointments(c *gin.Context)
	DeleteAppointment(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc carerecord.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the care-record domain.
func New(l pkgLog.Logger, uc carerecord.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
