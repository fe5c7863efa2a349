package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// dueSoonWindow is how far ahead a due date counts as "due soon".
const dueSoonWindow = 24 * time.Hour

// Task is a to-do item. It is replaced as a whole on every write.
type Task struct {
	ID          string
	Title       string
	Description string
	IsCompleted bool
	Priority    Priority
	DueDate     *time.Time
	SubTasks    []SubTask
	CreatedAt   time.Time
	CompletedAt *time.Time // non-nil iff IsCompleted
}

// SubTask is a checklist line owned by exactly one Task.
type SubTask struct {
	ID          string
	Title       string
	IsCompleted bool
	CreatedAt   time.Time
}

// NewTask builds a fresh incomplete task with a generated id.
func NewTask(title, description string, priority Priority, dueDate *time.Time, subTasks []SubTask, now time.Time) Task {
	if subTasks == nil {
		subTasks = []SubTask{}
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
		SubTasks:    subTasks,
		CreatedAt:   now,
	}
}

// NewSubTask builds an incomplete subtask with a generated id.
func NewSubTask(title string, now time.Time) SubTask {
	return SubTask{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
	}
}

// CompletedSubTasksCount returns the number of checked subtasks.
func (t Task) CompletedSubTasksCount() int {
	n := 0
	for _, s := range t.SubTasks {
		if s.IsCompleted {
			n++
		}
	}
	return n
}

// SubTaskProgress returns the completed share of subtasks in [0, 1].
// A task without subtasks reports 1.
func (t Task) SubTaskProgress() float64 {
	if len(t.SubTasks) == 0 {
		return 1
	}
	return float64(t.CompletedSubTasksCount()) / float64(len(t.SubTasks))
}

// IsOverdue reports whether an incomplete task's due date lies before now.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.IsCompleted
}

// IsDueSoon reports whether an incomplete task is due within the next 24 hours.
func (t Task) IsDueSoon(now time.Time) bool {
	if t.DueDate == nil || t.IsCompleted {
		return false
	}
	return t.DueDate.After(now) && !t.DueDate.After(now.Add(dueSoonWindow))
}

// WithCompletion returns a copy with the completion flag set to completed.
// CompletedAt is stamped with now when completing and cleared otherwise.
func (t Task) WithCompletion(completed bool, now time.Time) Task {
	t.IsCompleted = completed
	if completed {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	return t
}

// Toggled flips the completion flag.
func (t Task) Toggled(now time.Time) Task {
	return t.WithCompletion(!t.IsCompleted, now)
}

// Clone returns a deep copy so callers can mutate subtasks without aliasing.
func (t Task) Clone() Task {
	c := t
	if t.SubTasks != nil {
		c.SubTasks = make([]SubTask, len(t.SubTasks))
		copy(c.SubTasks, t.SubTasks)
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := *t.CompletedAt
		c.CompletedAt = &d
	}
	return c
}
