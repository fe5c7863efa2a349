package task

import (
	"context"

	"ai-todo/internal/model"
)

// UseCase is the task board: UI flags held in memory plus fire-and-forget
// mutations of the task store. Mutations return at once; the Watch stream is
// the only feedback.
type UseCase interface {
	// UI state
	State() BoardState
	ShowAddDialog()
	HideAddDialog()
	ToggleIncompleteCollapsed()
	ToggleCompletedCollapsed()
	StartEditing(t model.Task)
	CancelEditing()

	// Mutations
	AddTask(ctx context.Context, input AddTaskInput)
	AddParsed(ctx context.Context, parsed model.ParsedTask)
	UpdateTask(ctx context.Context, input UpdateTaskInput)
	ToggleCompletion(ctx context.Context, id string)
	DeleteTask(ctx context.Context, id string)
	ClearCompleted(ctx context.Context)
	ToggleSubTask(ctx context.Context, taskID, subTaskID string)
	AddSubTask(ctx context.Context, taskID, title string)
	DeleteSubTask(ctx context.Context, taskID, subTaskID string)
	InitializeSampleData(ctx context.Context)

	// Reads
	Detail(ctx context.Context, id string) (model.Task, error)
	Tasks(ctx context.Context) ([]model.Task, error)
	List(ctx context.Context, view View) ([]model.Task, error)
	SortedByPriority(ctx context.Context) ([]model.Task, error)
	IncompleteCount(ctx context.Context) (int, error)
	Counts(ctx context.Context) (Counts, error)
	Watch(ctx context.Context) (<-chan []model.Task, error)

	// Wait blocks until every queued mutation has finished.
	Wait()
}
