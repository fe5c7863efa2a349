package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo/pkg/response"
)

// Parse godoc
// @Summary     Parse free text into a task
// @Description Sends the text to the model once and returns the extracted task for confirmation. Nothing is stored.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text and optional API key"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable reply"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/ai/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newParseResp(o, false))
}

// ParseAndAdd godoc
// @Summary     Parse free text and add the task
// @Description Like parse, then queues the task on the board.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text and optional API key"
// @Success     202 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable reply"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/ai/parse-and-add [POST]
func (h *handler) ParseAndAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.ParseAndAdd(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseAndAdd: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Accepted(c, newParseResp(o, true))
}
