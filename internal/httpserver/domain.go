package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiparseHTTP "ai-todo/internal/aiparse/delivery/http"
	preferenceHTTP "ai-todo/internal/preference/delivery/http"
	taskHTTP "ai-todo/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks and /api/v1/board.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupAIParseDomain registers the rate-limited /api/v1/ai parse routes.
func (srv HTTPServer) setupAIParseDomain(ctx context.Context, api *gin.RouterGroup) {
	h := aiparseHTTP.New(srv.l, srv.aiparseUC)
	aiparseHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "AI parse domain registered")
}

// setupPreferenceDomain registers /api/v1/ai/config.
func (srv HTTPServer) setupPreferenceDomain(ctx context.Context, api *gin.RouterGroup) {
	h := preferenceHTTP.New(srv.l, srv.preferenceUC)
	preferenceHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Preference domain registered")
}
