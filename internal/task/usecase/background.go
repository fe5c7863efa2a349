package usecase

import (
	"context"

	"ai-todo/internal/model"
)

// launch runs fn on its own goroutine, detached from ctx cancellation.
// Failures are logged and passed to the error hook, never returned.
func (uc *implUseCase) launch(ctx context.Context, op string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		if err := fn(ctx); err != nil {
			uc.l.Errorf(ctx, "task.usecase.%s: %v", op, err)
			if uc.onError != nil {
				uc.onError(op, err)
			}
		}
	}()
}

// modify is a read-modify-write of one task. A missing task is ignored.
// Last writer wins: nothing guards against a concurrent write in between.
func (uc *implUseCase) modify(ctx context.Context, op, id string, fn func(t *model.Task) bool) {
	uc.launch(ctx, op, func(ctx context.Context) error {
		t, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			uc.l.Debugf(ctx, "task.usecase.%s: task %s not found, skipped", op, id)
			return nil
		}
		if !fn(t) {
			return nil
		}
		return uc.repo.Update(ctx, *t)
	})
}

func (uc *implUseCase) Wait() {
	uc.wg.Wait()
}
