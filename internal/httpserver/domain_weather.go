package httpserver

import (
	"context"

	"todo-weather/internal/middleware"
	weatherHTTP "todo-weather/internal/weather/delivery/http"
	weatherCache "todo-weather/internal/weather/repository/sqlite"
	weatherRemote "todo-weather/internal/weather/repository/weatherapi"
	weatherUC "todo-weather/internal/weather/usecase"

	"github.com/gin-gonic/gin"
)

// setupWeatherDomain initializes the weather widget backend and registers its routes.
func (srv *HTTPServer) setupWeatherDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories: local cache and remote service
	cache := weatherCache.New(srv.db, srv.l)
	remote := weatherRemote.New(srv.weatherClient, srv.l)
	if srv.weatherClient == nil {
		srv.l.Warnf(ctx, "Weather API key not configured: only cached weather will be served")
	}

	// 2. UseCase
	uc := weatherUC.New(srv.l, cache, remote, srv.weatherOptions)

	// 3. HTTP Handler
	h := weatherHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/weather
	weatherHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Weather domain registered")
	return nil
}
