package http

import (
	"strings"
	"time"

	"ai-todo/internal/aiparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text   string `json:"text" binding:"max=4000"`
	APIKey string `json:"api_key"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r parseReq) toInput() aiparse.ParseInput {
	return aiparse.ParseInput{Text: r.Text, APIKey: r.APIKey}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Reasoning   string     `json:"reasoning"`
	SubTasks    []string   `json:"sub_tasks"`
}

type parseResp struct {
	Task  parsedTaskResp `json:"task"`
	Added bool           `json:"added"`
}

func newParseResp(o aiparse.ParseOutput, added bool) parseResp {
	subs := o.Task.SubTasks
	if subs == nil {
		subs = []string{}
	}
	return parseResp{
		Task: parsedTaskResp{
			Title:       o.Task.Title,
			Description: o.Task.Description,
			Priority:    o.Task.Priority.String(),
			DueDate:     o.Task.DueDate,
			Reasoning:   o.Task.Reasoning,
			SubTasks:    subs,
		},
		Added: added,
	}
}
