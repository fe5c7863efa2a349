package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-todo/config"
	_ "ai-todo/docs" // Swagger docs
	"ai-todo/internal/aiparse"
	aiparseUC "ai-todo/internal/aiparse/usecase"
	"ai-todo/internal/httpserver"
	preferenceUC "ai-todo/internal/preference/usecase"
	"ai-todo/internal/task"
	taskRepo "ai-todo/internal/task/repository"
	"ai-todo/internal/task/repository/postgre"
	taskUC "ai-todo/internal/task/usecase"
	"ai-todo/pkg/datemath"
	"ai-todo/pkg/deepseek"
	"ai-todo/pkg/gcalendar"
	"ai-todo/pkg/log"
)

// @title       AI To-Do API
// @description To-do list with subtasks, priorities and natural-language task entry.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI To-Do...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer closeDatabase(db)

	if err := postgre.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	feed, err := openFeed(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to open change feed: ", err)
		return
	}
	defer feed.Close()
	logger.Infof(ctx, "Database driver: %s, redis feed: %t", cfg.Database.Driver, cfg.Redis.Enabled)

	repo := taskRepo.New(postgre.New(db, logger, feed))

	// 4. Google Calendar client (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task board
	board := taskUC.New(logger, repo, calendar, task.CalendarOptions{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   cfg.Extractor.Timezone,
	}, nil)
	defer board.Wait()

	if cfg.Seed.SampleData {
		board.InitializeSampleData(ctx)
	}

	// 6. Preferences and AI extraction
	prefs, err := preferenceUC.New(logger, cfg.Preferences.Path)
	if err != nil {
		logger.Error(ctx, "Failed to load preferences: ", err)
		return
	}

	dates, err := datemath.NewParser(cfg.Extractor.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Extractor.Timezone, err)
		dates, _ = datemath.NewParser("")
	}

	parser := aiparseUC.New(logger, deepseek.NewFactory(deepseek.Config{
		BaseURL: cfg.DeepSeek.BaseURL,
		Model:   cfg.DeepSeek.Model,
	}), dates, prefs, board, aiparse.Options{
		Temperature: cfg.DeepSeek.Temperature,
		MaxTokens:   cfg.DeepSeek.MaxTokens,
	})
	logger.Infof(ctx, "AI parsing enabled: %t", prefs.IsAIEnabled())

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		CORSOrigins:       cfg.HTTPServer.CORSOrigins,
		AIRateLimitPerMin: cfg.RateLimit.AIPerMin,
		TaskUC:            board,
		AIParseUC:         parser,
		PreferenceUC:      prefs,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
