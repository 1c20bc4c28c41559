package http

import (
	"todo-weather/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	w := rg.Group("/weather", mw.RateLimit())
	{
		w.GET("", h.Get)
		w.POST("/refresh", h.Refresh)
		w.DELETE("/cache", h.ClearCache)
		w.GET("/stream", h.Stream)
	}
}
