package repository

import (
	"context"

	"ai-todo/internal/model"
)

type implRepository struct {
	gw Gateway
}

// New wraps a Gateway with entity conversion. It adds no error handling of
// its own: gateway errors are returned unchanged.
func New(gw Gateway) Repository {
	if gw == nil {
		panic("task/repository: gateway is required")
	}
	return &implRepository{gw: gw}
}

func (r *implRepository) Insert(ctx context.Context, t model.Task) error {
	return r.gw.Upsert(ctx, ToRow(t))
}

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	return r.gw.Upsert(ctx, ToRow(t))
}

func (r *implRepository) DeleteByID(ctx context.Context, id string) error {
	return r.gw.DeleteByID(ctx, id)
}

func (r *implRepository) DeleteCompleted(ctx context.Context) error {
	return r.gw.DeleteCompleted(ctx)
}

func (r *implRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	row, err := r.gw.GetByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	t := row.ToModel()
	return &t, nil
}

func (r *implRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	return r.list(ctx, ViewAll)
}

func (r *implRepository) ListIncomplete(ctx context.Context) ([]model.Task, error) {
	return r.list(ctx, ViewIncomplete)
}

func (r *implRepository) ListCompleted(ctx context.Context) ([]model.Task, error) {
	return r.list(ctx, ViewCompleted)
}

func (r *implRepository) list(ctx context.Context, v View) ([]model.Task, error) {
	rows, err := r.gw.List(ctx, ListOptions{View: v})
	if err != nil {
		return nil, err
	}
	return toModels(rows), nil
}

func (r *implRepository) CountAll(ctx context.Context) (int, error) {
	return r.gw.Count(ctx, CountOptions{View: ViewAll})
}

func (r *implRepository) CountIncomplete(ctx context.Context) (int, error) {
	return r.gw.Count(ctx, CountOptions{View: ViewIncomplete})
}

func (r *implRepository) CountCompleted(ctx context.Context) (int, error) {
	return r.gw.Count(ctx, CountOptions{View: ViewCompleted})
}

func (r *implRepository) Watch(ctx context.Context) (<-chan []model.Task, error) {
	rows, err := r.gw.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []model.Task)
	go func() {
		defer close(out)
		for snapshot := range rows {
			select {
			case out <- toModels(snapshot):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
