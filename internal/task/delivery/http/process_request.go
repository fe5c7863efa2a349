package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo/pkg/errors"
)

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processAddSubTaskReq binds the add subtask body.
func (h *handler) processAddSubTaskReq(c *gin.Context) (addSubTaskReq, error) {
	var req addSubTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}
