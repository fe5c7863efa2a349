package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-todo/pkg/response"
)

// Board godoc
// @Summary     Get board UI state
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board [GET]
func (h *handler) Board(c *gin.Context) {
	response.OK(c, newBoardResp(h.uc.State(), time.Now()))
}

// ShowAddDialog godoc
// @Summary     Open the add dialog
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board/add-dialog/show [POST]
func (h *handler) ShowAddDialog(c *gin.Context) {
	h.uc.ShowAddDialog()
	h.Board(c)
}

// HideAddDialog godoc
// @Summary     Close the add dialog
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board/add-dialog/hide [POST]
func (h *handler) HideAddDialog(c *gin.Context) {
	h.uc.HideAddDialog()
	h.Board(c)
}

// ToggleIncompleteCollapsed godoc
// @Summary     Collapse or expand the incomplete section
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board/incomplete/toggle [POST]
func (h *handler) ToggleIncompleteCollapsed(c *gin.Context) {
	h.uc.ToggleIncompleteCollapsed()
	h.Board(c)
}

// ToggleCompletedCollapsed godoc
// @Summary     Collapse or expand the completed section
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board/completed/toggle [POST]
func (h *handler) ToggleCompletedCollapsed(c *gin.Context) {
	h.uc.ToggleCompletedCollapsed()
	h.Board(c)
}

// StartEditing godoc
// @Summary     Open a task in the editor
// @Tags        Board
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/board/editing/{id} [POST]
func (h *handler) StartEditing(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.uc.StartEditing(t)
	h.Board(c)
}

// CancelEditing godoc
// @Summary     Close the editor
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board/editing [DELETE]
func (h *handler) CancelEditing(c *gin.Context) {
	h.uc.CancelEditing()
	h.Board(c)
}
