package httpserver

import (
	"context"

	"todo-weather/internal/middleware"
	"todo-weather/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes(ctx)

	if err := srv.registerDomainRoutes(ctx, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())
}

func (srv *HTTPServer) registerSystemRoutes(ctx context.Context) {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI is not exposed in production.
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Swagger UI disabled in production")
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupWeatherDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
