package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-weather/internal/task"
	pkgErrors "todo-weather/pkg/errors"
	"todo-weather/pkg/response"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")

func errBadRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}

// mapError translates domain errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidCategory),
		errors.Is(err, task.ErrInvalidView),
		errors.Is(err, task.ErrInvalidFilter),
		errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
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
