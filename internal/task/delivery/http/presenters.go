package http

import (
	"strings"
	"time"

	"ai-todo/internal/model"
	"ai-todo/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	View string `form:"view"`
}

func (r listReq) validate() error {
	switch task.View(r.View) {
	case "", task.ViewAll, task.ViewSorted, task.ViewIncomplete, task.ViewCompleted:
		return nil
	}
	return errInvalidView
}

type subTaskReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

// createReq allows a blank title: the board drops it silently.
type createReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description" binding:"max=2000"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	SubTasks    []string   `json:"sub_tasks"`
}

func (r createReq) validate() error {
	return validatePriority(r.Priority)
}

func (r createReq) toInput() task.AddTaskInput {
	return task.AddTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.PriorityOrDefault(r.Priority),
		DueDate:     r.DueDate,
		SubTasks:    r.SubTasks,
	}
}

type updateReq struct {
	ID          string       `json:"-"` // populated from URI param
	Title       string       `json:"title"`
	Description string       `json:"description" binding:"max=2000"`
	Priority    string       `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	SubTasks    []subTaskReq `json:"sub_tasks"`
}

func (r updateReq) validate() error {
	return validatePriority(r.Priority)
}

func (r updateReq) toInput() task.UpdateTaskInput {
	subs := make([]model.SubTask, 0, len(r.SubTasks))
	for _, s := range r.SubTasks {
		subs = append(subs, model.SubTask{ID: s.ID, Title: s.Title, IsCompleted: s.IsCompleted})
	}
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.PriorityOrDefault(r.Priority),
		DueDate:     r.DueDate,
		SubTasks:    subs,
	}
}

type addSubTaskReq struct {
	Title string `json:"title"`
}

func validatePriority(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if _, ok := model.ParsePriority(name); !ok {
		return errInvalidPriority
	}
	return nil
}

// --- Response DTOs ---

type subTaskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type taskResp struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	IsCompleted     bool          `json:"is_completed"`
	Priority        string        `json:"priority"`
	PriorityLabel   string        `json:"priority_label"`
	PriorityColor   string        `json:"priority_color"`
	DueDate         *time.Time    `json:"due_date"`
	IsOverdue       bool          `json:"is_overdue"`
	IsDueSoon       bool          `json:"is_due_soon"`
	SubTasks        []subTaskResp `json:"sub_tasks"`
	SubTaskProgress float64       `json:"sub_task_progress"`
	CreatedAt       time.Time     `json:"created_at"`
	CompletedAt     *time.Time    `json:"completed_at"`
}

func newTaskResp(t model.Task, now time.Time) taskResp {
	subs := make([]subTaskResp, len(t.SubTasks))
	for i, s := range t.SubTasks {
		subs[i] = subTaskResp{
			ID:          s.ID,
			Title:       s.Title,
			IsCompleted: s.IsCompleted,
			CreatedAt:   s.CreatedAt,
		}
	}
	style := styleOf(t.Priority)
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		IsCompleted:     t.IsCompleted,
		Priority:        t.Priority.String(),
		PriorityLabel:   style.Label,
		PriorityColor:   style.Color,
		DueDate:         t.DueDate,
		IsOverdue:       t.IsOverdue(now),
		IsDueSoon:       t.IsDueSoon(now),
		SubTasks:        subs,
		SubTaskProgress: t.SubTaskProgress(),
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

func newTaskResps(tasks []model.Task, now time.Time) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t, now)
	}
	return out
}

type listResp struct {
	View  string     `json:"view"`
	Tasks []taskResp `json:"tasks"`
}

type countsResp struct {
	All        int `json:"all"`
	Incomplete int `json:"incomplete"`
	Completed  int `json:"completed"`
}

func newCountsResp(c task.Counts) countsResp {
	return countsResp{All: c.All, Incomplete: c.Incomplete, Completed: c.Completed}
}

type boardResp struct {
	ShowAddDialog       bool      `json:"show_add_dialog"`
	IncompleteCollapsed bool      `json:"incomplete_collapsed"`
	CompletedCollapsed  bool      `json:"completed_collapsed"`
	EditingTask         *taskResp `json:"editing_task"`
}

func newBoardResp(s task.BoardState, now time.Time) boardResp {
	resp := boardResp{
		ShowAddDialog:       s.ShowAddDialog,
		IncompleteCollapsed: s.IncompleteCollapsed,
		CompletedCollapsed:  s.CompletedCollapsed,
	}
	if s.EditingTask != nil {
		t := newTaskResp(*s.EditingTask, now)
		resp.EditingTask = &t
	}
	return resp
}
