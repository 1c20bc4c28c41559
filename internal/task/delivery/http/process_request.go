package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todo-weather/internal/task"
)

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, errBadRequest(err)
	}
	return req.toInput(h, time.Now())
}

// processUpdateReq binds the replacement body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateInput, error) {
	id, err := h.processID(c)
	if err != nil {
		return task.UpdateInput{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateInput{}, errBadRequest(err)
	}
	req.ID = id
	return req.toInput(h, time.Now())
}

// processListReq binds the view query parameters.
func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, errBadRequest(err)
	}
	return req.toInput()
}

func (h *handler) processFilterReq(c *gin.Context) (task.Filter, error) {
	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.Filter{}, errBadRequest(err)
	}
	return req.toFilter()
}
