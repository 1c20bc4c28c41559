package http

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-weather/internal/model"
	"todo-weather/pkg/response"
)

// Get godoc
// @Summary     Current weather
// @Description Served from cache when younger than the TTL. On a failed fetch an expired snapshot is returned with stale=true. Without q the default location is used.
// @Tags        Weather
// @Produce     json
// @Param       q query string false "Location: place name or lat,lng"
// @Success     200 {object} weatherResp
// @Failure     502 {object} response.Resp "Weather service unavailable and nothing cached"
// @Router      /api/v1/weather [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	q := c.Query("q")

	var (
		snap model.WeatherSnapshot
		err  error
	)
	if strings.TrimSpace(q) == "" {
		snap, err = h.uc.LoadDefault(ctx)
	} else {
		snap, err = h.uc.GetWeather(ctx, q)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newWeatherResp(snap))
}

// Refresh godoc
// @Summary     Force a weather fetch
// @Description Always calls the weather service. Without q the last requested location is refreshed.
// @Tags        Weather
// @Produce     json
// @Param       q query string false "Location"
// @Success     200 {object} weatherResp
// @Failure     502 {object} response.Resp "Weather service unavailable"
// @Router      /api/v1/weather/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.RefreshWeather(ctx, c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newWeatherResp(snap))
}

// ClearCache godoc
// @Summary     Clear cached weather
// @Description Clears one location, or every location when q is empty.
// @Tags        Weather
// @Produce     json
// @Param       q query string false "Location"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/weather/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearCache(ctx, c.Query("q")); err != nil {
		h.l.Errorf(ctx, "uc.ClearCache: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// Stream godoc
// @Summary     Stream cached weather
// @Description Server-sent events. A "weather" event is sent whenever the cached snapshot for q changes.
// @Tags        Weather
// @Produce     text/event-stream
// @Param       q query string true "Location"
// @Success     200 {object} weatherResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/weather/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	updates, err := h.uc.WatchWeather(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("weather", h.newWeatherResp(snap))
		return true
	})
}
