package task

import (
	"time"

	"ai-todo/internal/model"
)

// View selects a list ordering.
type View string

const (
	ViewAll        View = "all"
	ViewSorted     View = "sorted"
	ViewIncomplete View = "incomplete"
	ViewCompleted  View = "completed"
)

// BoardState is a snapshot of the UI flags.
type BoardState struct {
	ShowAddDialog       bool
	IncompleteCollapsed bool
	CompletedCollapsed  bool
	EditingTask         *model.Task
}

// AddTaskInput is the input for AddTask. Blank subtask titles are skipped.
type AddTaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time
	SubTasks    []string
}

// UpdateTaskInput replaces the editable fields of task ID. SubTasks without
// an ID are created fresh.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time
	SubTasks    []model.SubTask
}

// Counts groups the three collection sizes.
type Counts struct {
	All        int
	Incomplete int
	Completed  int
}

// ErrorHook receives background mutation failures.
type ErrorHook func(op string, err error)

// CalendarOptions configures the optional calendar mirror.
type CalendarOptions struct {
	CalendarID string
	Timezone   string
}
