package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"ai-todo/pkg/response"
)

// sseEventTasks names the event carrying a full collection snapshot.
const sseEventTasks = "tasks"

// Stream godoc
// @Summary     Live task collection
// @Description Server-Sent Events. Sends the whole collection on connect and again after every change.
// @Tags        Tasks
// @Produce     text/event-stream
// @Success     200 {array} taskResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	snapshots, err := h.uc.Watch(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Watch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case snap, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent(sseEventTasks, newTaskResps(snap, time.Now()))
			return true
		}
	})
}
