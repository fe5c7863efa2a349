package model

import "time"

// ParsedTask is the structured result of extracting a task from free text.
type ParsedTask struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Reasoning   string
	SubTasks    []string
}

// ToTask builds a new Task from the parsed fields.
func (p ParsedTask) ToTask(now time.Time) Task {
	subs := make([]SubTask, 0, len(p.SubTasks))
	for _, title := range p.SubTasks {
		subs = append(subs, NewSubTask(title, now))
	}
	return NewTask(p.Title, p.Description, p.Priority, p.DueDate, subs, now)
}
