package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo/internal/middleware"
)

// RegisterRoutes maps the AI endpoints. Both go through the per-IP limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.RateLimit())
	{
		ai.POST("/parse", h.Parse)
		ai.POST("/parse-and-add", h.ParseAndAdd)
	}
}
