package repository

import (
	"time"

	"ai-todo/internal/model"
)

// TaskRow is the storage shape of a Task: one row per task, subtasks as an
// embedded JSON blob, priority stored by name with a numeric rank for ordering.
type TaskRow struct {
	ID           string       `gorm:"primaryKey;type:varchar(36)"`
	Title        string       `gorm:"not null"`
	Description  string       `gorm:"not null"`
	IsCompleted  bool         `gorm:"not null;index"`
	Priority     string       `gorm:"type:varchar(10);not null"`
	PriorityRank int          `gorm:"not null"`
	DueDate      *time.Time   `gorm:""`
	SubTasks     []SubTaskRow `gorm:"serializer:json;type:text"`
	CreatedAt    time.Time    `gorm:"not null;index"`
	CompletedAt  *time.Time   `gorm:""`
}

// TableName pins the table name.
func (TaskRow) TableName() string {
	return "todos"
}

// SubTaskRow is the JSON element shape inside TaskRow.SubTasks.
type SubTaskRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToRow converts an entity to its storage row.
func ToRow(t model.Task) TaskRow {
	subs := make([]SubTaskRow, len(t.SubTasks))
	for i, s := range t.SubTasks {
		subs[i] = SubTaskRow{
			ID:          s.ID,
			Title:       s.Title,
			IsCompleted: s.IsCompleted,
			CreatedAt:   s.CreatedAt.UTC(),
		}
	}
	return TaskRow{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		IsCompleted:  t.IsCompleted,
		Priority:     t.Priority.String(),
		PriorityRank: int(t.Priority),
		DueDate:      utcPtr(t.DueDate),
		SubTasks:     subs,
		CreatedAt:    t.CreatedAt.UTC(),
		CompletedAt:  utcPtr(t.CompletedAt),
	}
}

// ToModel converts a storage row back to an entity.
func (r TaskRow) ToModel() model.Task {
	subs := make([]model.SubTask, len(r.SubTasks))
	for i, s := range r.SubTasks {
		subs[i] = model.SubTask{
			ID:          s.ID,
			Title:       s.Title,
			IsCompleted: s.IsCompleted,
			CreatedAt:   s.CreatedAt,
		}
	}
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		Priority:    model.PriorityOrDefault(r.Priority),
		DueDate:     r.DueDate,
		SubTasks:    subs,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

func toModels(rows []TaskRow) []model.Task {
	out := make([]model.Task, len(rows))
	for i, r := range rows {
		out[i] = r.ToModel()
	}
	return out
}

// utcPtr normalizes stored instants so text-backed drivers order them correctly.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
