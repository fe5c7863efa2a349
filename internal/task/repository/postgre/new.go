package postgre

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ai-todo/internal/task/repository"
	"ai-todo/pkg/changefeed"
	"ai-todo/pkg/log"
)

type implGateway struct {
	db   *gorm.DB
	l    log.Logger
	feed changefeed.Feed
}

// New creates a gorm-backed task Gateway. Any gorm dialect works; production
// runs on postgres, local setups and tests on sqlite.
func New(db *gorm.DB, l log.Logger, feed changefeed.Feed) repository.Gateway {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	if feed == nil {
		feed = changefeed.NewLocal()
	}
	return &implGateway{db: db, l: l, feed: feed}
}

// Migrate creates or updates the todos table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&repository.TaskRow{}); err != nil {
		return fmt.Errorf("task/repository/postgre: migrate: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (g *implGateway) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
