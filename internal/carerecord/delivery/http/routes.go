package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.PUT("/:user_id/profile", h.SaveProfile)
	rg.GET("/:user_id/profile", h.GetProfile)

	rg.POST("/:user_id/medications", h.CreateMedication)
	rg.GET("/:user_id/medications", h.ListMedications)
	rg.DELETE("/:user_id/medications/:id", h.DeleteMedication)

	rg.POST("/:user_id/vitals", h.LogVital)
	rg.GET("/:user_id/vitals", h.ListVitals)

	rg.POST("/:user_id/appointments", h.CreateAppointment)
	rg.GET("/:user_id/appointments", h.ListAppointments)
	rg.DELETE("/:user_id/appointments/:id", h.DeleteAppointment)
}
