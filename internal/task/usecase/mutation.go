package usecase

import (
	"context"
	"strings"
	"time"

	"ai-todo/internal/model"
	"ai-todo/internal/task"
)

// AddTask queues the insert of a new task. A blank title is dropped silently.
func (uc *implUseCase) AddTask(ctx context.Context, input task.AddTaskInput) {
	if strings.TrimSpace(input.Title) == "" {
		uc.l.Debugf(ctx, "task.usecase.AddTask: blank title dropped")
		return
	}

	now := uc.now()
	subs := make([]model.SubTask, 0, len(input.SubTasks))
	for _, title := range input.SubTasks {
		if strings.TrimSpace(title) == "" {
			continue
		}
		subs = append(subs, model.NewSubTask(title, now))
	}

	t := model.NewTask(input.Title, input.Description, validPriority(input.Priority), input.DueDate, subs, now)
	uc.insert(ctx, "AddTask", t)
}

// AddParsed queues the insert of a task extracted from free text.
func (uc *implUseCase) AddParsed(ctx context.Context, parsed model.ParsedTask) {
	if strings.TrimSpace(parsed.Title) == "" {
		return
	}
	parsed.Priority = validPriority(parsed.Priority)
	uc.insert(ctx, "AddParsed", parsed.ToTask(uc.now()))
}

func (uc *implUseCase) insert(ctx context.Context, op string, t model.Task) {
	uc.launch(ctx, op, func(ctx context.Context) error {
		if err := uc.repo.Insert(ctx, t); err != nil {
			return err
		}
		uc.l.Infof(ctx, "task.usecase.%s: added %s %q", op, t.ID, t.Title)
		uc.tryCreateCalendarEvent(ctx, t)
		return nil
	})
}

// UpdateTask replaces the editable fields of an existing task and closes the
// editor. A blank title is dropped and leaves the editor open.
func (uc *implUseCase) UpdateTask(ctx context.Context, input task.UpdateTaskInput) {
	if strings.TrimSpace(input.Title) == "" {
		uc.l.Debugf(ctx, "task.usecase.UpdateTask: blank title dropped")
		return
	}

	now := uc.now()
	subs := normalizeSubTasks(input.SubTasks, now)
	uc.modify(ctx, "UpdateTask", input.ID, func(t *model.Task) bool {
		t.Title = strings.TrimSpace(input.Title)
		t.Description = strings.TrimSpace(input.Description)
		t.Priority = validPriority(input.Priority)
		t.DueDate = input.DueDate
		t.SubTasks = subs
		return true
	})

	uc.CancelEditing()
}

// ToggleCompletion flips completion, stamping or clearing CompletedAt.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) {
	uc.modify(ctx, "ToggleCompletion", id, func(t *model.Task) bool {
		*t = t.Toggled(uc.now())
		return true
	})
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) {
	uc.launch(ctx, "DeleteTask", func(ctx context.Context) error {
		return uc.repo.DeleteByID(ctx, id)
	})
}

func (uc *implUseCase) ClearCompleted(ctx context.Context) {
	uc.launch(ctx, "ClearCompleted", func(ctx context.Context) error {
		return uc.repo.DeleteCompleted(ctx)
	})
}

func (uc *implUseCase) ToggleSubTask(ctx context.Context, taskID, subTaskID string) {
	uc.modify(ctx, "ToggleSubTask", taskID, func(t *model.Task) bool {
		for i := range t.SubTasks {
			if t.SubTasks[i].ID == subTaskID {
				t.SubTasks[i].IsCompleted = !t.SubTasks[i].IsCompleted
				return true
			}
		}
		return false
	})
}

// AddSubTask appends a subtask. A blank title is dropped silently.
func (uc *implUseCase) AddSubTask(ctx context.Context, taskID, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	sub := model.NewSubTask(title, uc.now())
	uc.modify(ctx, "AddSubTask", taskID, func(t *model.Task) bool {
		t.SubTasks = append(t.SubTasks, sub)
		return true
	})
}

func (uc *implUseCase) DeleteSubTask(ctx context.Context, taskID, subTaskID string) {
	uc.modify(ctx, "DeleteSubTask", taskID, func(t *model.Task) bool {
		kept := make([]model.SubTask, 0, len(t.SubTasks))
		for _, s := range t.SubTasks {
			if s.ID != subTaskID {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(t.SubTasks) {
			return false
		}
		t.SubTasks = kept
		return true
	})
}

func validPriority(p model.Priority) model.Priority {
	if !p.IsValid() {
		return model.PriorityMedium
	}
	return p
}

// normalizeSubTasks trims titles, drops blanks and mints ids where missing.
func normalizeSubTasks(in []model.SubTask, now time.Time) []model.SubTask {
	out := make([]model.SubTask, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		if s.ID == "" {
			fresh := model.NewSubTask(s.Title, now)
			fresh.IsCompleted = s.IsCompleted
			out = append(out, fresh)
			continue
		}
		s.Title = strings.TrimSpace(s.Title)
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		out = append(out, s)
	}
	return out
}
