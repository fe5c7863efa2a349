package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo/pkg/errors"
	"ai-todo/pkg/response"
)

// Status godoc
// @Summary     AI settings
// @Description Reports whether AI parsing is enabled. The key itself is never returned.
// @Tags        AI
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/ai/config [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status()))
}

// SaveAPIKey godoc
// @Summary     Store the AI API key
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body saveKeyReq true "API key"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/config [PUT]
func (h *handler) SaveAPIKey(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	if err := h.uc.SaveAPIKey(ctx, req.APIKey); err != nil {
		h.l.Errorf(ctx, "uc.SaveAPIKey: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatusResp(h.uc.Status()))
}

// ClearAPIKey godoc
// @Summary     Remove the AI API key
// @Tags        AI
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/config [DELETE]
func (h *handler) ClearAPIKey(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearAPIKey(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearAPIKey: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatusResp(h.uc.Status()))
}
