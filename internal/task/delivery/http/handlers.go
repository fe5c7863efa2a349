package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-todo/internal/task"
	"ai-todo/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the task collection in one of four orders. "sorted" puts incomplete tasks first by priority and due date.
// @Tags        Tasks
// @Produce     json
// @Param       view query string false "all (default), sorted, incomplete, completed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view := task.View(req.View)
	if view == "" {
		view = task.ViewAll
	}

	tasks, err := h.uc.List(ctx, view)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, listResp{View: string(view), Tasks: newTaskResps(tasks, time.Now())})
}

// Counts godoc
// @Summary     Count tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} countsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/counts [GET]
func (h *handler) Counts(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.uc.Counts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Counts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCountsResp(counts))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t, time.Now()))
}

// Create godoc
// @Summary     Add a task
// @Description Queues the insert. A blank title is dropped silently; watch the stream for the result.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     202 {object} response.Resp "Accepted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.AddTask(ctx, req.toInput())
	response.Accepted(c, nil)
}

// Update godoc
// @Summary     Update a task
// @Description Replaces title, description, priority, due date and subtasks, then closes the editor.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Task fields"
// @Success     202 {object} response.Resp "Accepted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.UpdateTask(ctx, req.toInput())
	response.Accepted(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     202 {object} response.Resp "Accepted"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	h.uc.DeleteTask(c.Request.Context(), c.Param("id"))
	response.Accepted(c, nil)
}

// ToggleCompletion godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     202 {object} response.Resp "Accepted"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleCompletion(c *gin.Context) {
	h.uc.ToggleCompletion(c.Request.Context(), c.Param("id"))
	response.Accepted(c, nil)
}

// ClearCompleted godoc
// @Summary     Delete all completed tasks
// @Tags        Tasks
// @Produce     json
// @Success     202 {object} response.Resp "Accepted"
// @Router      /api/v1/tasks/completed [DELETE]
func (h *handler) ClearCompleted(c *gin.Context) {
	h.uc.ClearCompleted(c.Request.Context())
	response.Accepted(c, nil)
}

// AddSubTask godoc
// @Summary     Add a subtask
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body addSubTaskReq true "Subtask"
// @Success     202 {object} response.Resp "Accepted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) AddSubTask(c *gin.Context) {
	req, err := h.processAddSubTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.AddSubTask(c.Request.Context(), c.Param("id"), req.Title)
	response.Accepted(c, nil)
}

// ToggleSubTask godoc
// @Summary     Toggle subtask completion
// @Tags        Subtasks
// @Produce     json
// @Param       id  path string true "Task ID"
// @Param       sid path string true "Subtask ID"
// @Success     202 {object} response.Resp "Accepted"
// @Router      /api/v1/tasks/{id}/subtasks/{sid}/toggle [POST]
func (h *handler) ToggleSubTask(c *gin.Context) {
	h.uc.ToggleSubTask(c.Request.Context(), c.Param("id"), c.Param("sid"))
	response.Accepted(c, nil)
}

// DeleteSubTask godoc
// @Summary     Delete a subtask
// @Tags        Subtasks
// @Produce     json
// @Param       id  path string true "Task ID"
// @Param       sid path string true "Subtask ID"
// @Success     202 {object} response.Resp "Accepted"
// @Router      /api/v1/tasks/{id}/subtasks/{sid} [DELETE]
func (h *handler) DeleteSubTask(c *gin.Context) {
	h.uc.DeleteSubTask(c.Request.Context(), c.Param("id"), c.Param("sid"))
	response.Accepted(c, nil)
}
