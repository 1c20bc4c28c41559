package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-weather/internal/weather"
	pkgErrors "todo-weather/pkg/errors"
	"todo-weather/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, weather.ErrEmptyLocation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return nil
	}
}

func (h *handler) writeError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
