package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "care-companion/internal/assistant/delivery/http"
	careHTTP "care-companion/internal/carerecord/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	assistantHTTP.RegisterRoutes(api.Group("/assistant"), srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	careHTTP.RegisterRoutes(api.Group("/care"), srv.careHandler, srv.mw)
	srv.l.Infof(ctx, "Care-record domain registered")
}
