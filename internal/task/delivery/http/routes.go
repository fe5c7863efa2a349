package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/counts", h.Counts)
		tasks.GET("/stream", h.Stream)
		tasks.DELETE("/completed", h.ClearCompleted)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.ToggleCompletion)
		tasks.POST("/:id/subtasks", h.AddSubTask)
		tasks.POST("/:id/subtasks/:sid/toggle", h.ToggleSubTask)
		tasks.DELETE("/:id/subtasks/:sid", h.DeleteSubTask)
	}

	board := rg.Group("/board")
	{
		board.GET("", h.Board)
		board.POST("/add-dialog/show", h.ShowAddDialog)
		board.POST("/add-dialog/hide", h.HideAddDialog)
		board.POST("/incomplete/toggle", h.ToggleIncompleteCollapsed)
		board.POST("/completed/toggle", h.ToggleCompletedCollapsed)
		board.POST("/editing/:id", h.StartEditing)
		board.DELETE("/editing", h.CancelEditing)
	}
}
