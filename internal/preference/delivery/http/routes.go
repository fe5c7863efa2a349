package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the AI settings endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	cfg := rg.Group("/ai/config")
	{
		cfg.GET("", h.Status)
		cfg.PUT("", h.SaveAPIKey)
		cfg.DELETE("", h.ClearAPIKey)
	}
}
