package http

import (
	"github.com/gin-gonic/gin"

	"care-companion/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/query", mw.Auth(), h.Query)
	rg.GET("/history/:user_id", mw.Auth(), h.History)
}
