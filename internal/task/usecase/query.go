package usecase

import (
	"context"

	"ai-todo/internal/model"
	"ai-todo/internal/task"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if t == nil {
		return model.Task{}, task.ErrTaskNotFound
	}
	return *t, nil
}

// Tasks returns the whole collection, newest first.
func (uc *implUseCase) Tasks(ctx context.Context) ([]model.Task, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *implUseCase) List(ctx context.Context, view task.View) ([]model.Task, error) {
	switch view {
	case "", task.ViewAll:
		return uc.repo.ListAll(ctx)
	case task.ViewSorted:
		return uc.SortedByPriority(ctx)
	case task.ViewIncomplete:
		return uc.repo.ListIncomplete(ctx)
	case task.ViewCompleted:
		return uc.repo.ListCompleted(ctx)
	default:
		return nil, task.ErrUnknownView
	}
}

// SortedByPriority derives the board order from the full collection:
// incomplete tasks by priority then due date, then completed ones as stored.
func (uc *implUseCase) SortedByPriority(ctx context.Context) ([]model.Task, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	incomplete, completed := model.SplitByCompletion(all)
	model.SortIncomplete(incomplete)
	return append(incomplete, completed...), nil
}

func (uc *implUseCase) IncompleteCount(ctx context.Context) (int, error) {
	return uc.repo.CountIncomplete(ctx)
}

func (uc *implUseCase) Counts(ctx context.Context) (task.Counts, error) {
	var (
		c   task.Counts
		err error
	)
	if c.All, err = uc.repo.CountAll(ctx); err != nil {
		return task.Counts{}, err
	}
	if c.Incomplete, err = uc.repo.CountIncomplete(ctx); err != nil {
		return task.Counts{}, err
	}
	if c.Completed, err = uc.repo.CountCompleted(ctx); err != nil {
		return task.Counts{}, err
	}
	return c, nil
}

func (uc *implUseCase) Watch(ctx context.Context) (<-chan []model.Task, error) {
	return uc.repo.Watch(ctx)
}
