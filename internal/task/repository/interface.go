package repository

import (
	"context"

	"ai-todo/internal/model"
)

// Gateway is the row-level contract of the durable task store.
// Every method is individually atomic; nothing spans rows.
type Gateway interface {
	Upsert(ctx context.Context, row TaskRow) error
	DeleteByID(ctx context.Context, id string) error
	DeleteCompleted(ctx context.Context) error

	// GetByID returns (nil, nil) when no row has the id.
	GetByID(ctx context.Context, id string) (*TaskRow, error)
	List(ctx context.Context, opt ListOptions) ([]TaskRow, error)
	Count(ctx context.Context, opt CountOptions) (int, error)

	// Watch streams the full collection (ViewAll order): once on subscribe,
	// then again after every write. Only the newest snapshot is kept for a
	// slow reader. The channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan []TaskRow, error)
}

// Repository is the entity-level façade the use cases talk to.
type Repository interface {
	Insert(ctx context.Context, t model.Task) error
	Update(ctx context.Context, t model.Task) error
	DeleteByID(ctx context.Context, id string) error
	DeleteCompleted(ctx context.Context) error

	GetByID(ctx context.Context, id string) (*model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	ListIncomplete(ctx context.Context) ([]model.Task, error)
	ListCompleted(ctx context.Context) ([]model.Task, error)

	CountAll(ctx context.Context) (int, error)
	CountIncomplete(ctx context.Context) (int, error)
	CountCompleted(ctx context.Context) (int, error)

	Watch(ctx context.Context) (<-chan []model.Task, error)
}
