package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"todo-weather/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Priority defaults to Low and category to OTHER.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	created, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.writeError(c, err)
		return
	}

	response.Created(c, h.newDetailResp(created))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Replace a task
// @Description Replaces every mutable field of the task. The creation time is kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Task data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// ToggleCompleted godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) ToggleCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	t, err := h.uc.ToggleCompleted(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompleted: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// ToggleFavorite godoc
// @Summary     Toggle favorite
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/favorite [PATCH]
func (h *handler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	t, err := h.uc.ToggleFavorite(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleFavorite: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List tasks by view
// @Description Views: all, completed, incomplete, favorite, today, overdue. Optionally narrowed by category and priority.
// @Tags        Tasks
// @Produce     json
// @Param       view     query string false "View (default all)"
// @Param       category query string false "Category, e.g. WORK"
// @Param       priority query string false "Priority: High, Medium, Low"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.List(ctx, input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(out.Tasks))
}

// Search godoc
// @Summary     Search task titles
// @Tags        Tasks
// @Produce     json
// @Param       q query string false "Substring of the title; blank lists every task"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Search(ctx, c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(out.Tasks))
}

// Filtered godoc
// @Summary     Tasks under the current display filter
// @Tags        Filter
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/filtered [GET]
func (h *handler) Filtered(c *gin.Context) {
	ctx := c.Request.Context()

	if h.holder.Ready() {
		response.OK(c, h.newListResp(h.holder.Current()))
		return
	}

	out, err := h.uc.Filtered(ctx, h.holder.Filter())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newListResp(out.Tasks))
}

// Stream godoc
// @Summary     Stream filtered tasks
// @Description Server-sent events. Each "tasks" event carries the full filtered list.
// @Tags        Filter
// @Produce     text/event-stream
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	updates := h.holder.Subscribe(c.Request.Context())

	c.Stream(func(w io.Writer) bool {
		tasks, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("tasks", h.newListResp(tasks))
		return true
	})
}

// GetFilter godoc
// @Summary     Current display filter
// @Tags        Filter
// @Produce     json
// @Success     200 {object} filterResp
// @Router      /api/v1/filter [GET]
func (h *handler) GetFilter(c *gin.Context) {
	response.OK(c, h.newFilterResp(h.holder.Filter()))
}

// SetFilter godoc
// @Summary     Replace the display filter
// @Description Search is AND-ed; the other set dimensions are OR-ed.
// @Tags        Filter
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Filter"
// @Success     200 {object} filterResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/filter [PUT]
func (h *handler) SetFilter(c *gin.Context) {
	f, err := h.processFilterReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.holder.SetFilter(f); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newFilterResp(h.holder.Filter()))
}

// ClearFilter godoc
// @Summary     Reset the display filter
// @Tags        Filter
// @Produce     json
// @Success     200 {object} filterResp
// @Router      /api/v1/filter [DELETE]
func (h *handler) ClearFilter(c *gin.Context) {
	h.holder.ClearFilter()
	response.OK(c, h.newFilterResp(h.holder.Filter()))
}
