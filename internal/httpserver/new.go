package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ai-todo/internal/aiparse"
	"ai-todo/internal/middleware"
	"ai-todo/internal/preference"
	"ai-todo/internal/task"
	"ai-todo/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	corsOrigins     []string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	taskUC       task.UseCase
	aiparseUC    aiparse.UseCase
	preferenceUC preference.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// CORSOrigins lists allowed origins. Empty allows any origin.
	CORSOrigins       []string
	AIRateLimitPerMin int
	ShutdownTimeout   time.Duration

	TaskUC       task.UseCase
	AIParseUC    aiparse.UseCase
	PreferenceUC preference.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		corsOrigins:     cfg.CORSOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, cfg.AIRateLimitPerMin),
		taskUC:          cfg.TaskUC,
		aiparseUC:       cfg.AIParseUC,
		preferenceUC:    cfg.PreferenceUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	return nil
}
