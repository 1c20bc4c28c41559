package http

import (
	"todo-weather/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/search", h.Search)
		tasks.GET("/filtered", h.Filtered)
		tasks.GET("/stream", h.Stream)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/complete", h.ToggleCompleted)
		tasks.PATCH("/:id/favorite", h.ToggleFavorite)
	}

	filter := rg.Group("/filter", mw.RateLimit())
	{
		filter.GET("", h.GetFilter)
		filter.PUT("", h.SetFilter)
		filter.DELETE("", h.ClearFilter)
	}
}
