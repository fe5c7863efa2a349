package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo/pkg/errors"
)

// processParseReq binds and validates the parse body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, req.validate()
}
