package aiparse

import "ai-todo/internal/model"

// DefaultTitle replaces a missing or blank title in the model's reply.
const DefaultTitle = "New task"

// ParseInput is the input for Parse. A blank APIKey falls back to the stored key.
type ParseInput struct {
	Text   string
	APIKey string
}

// ParseOutput is the result of Parse.
type ParseOutput struct {
	Task model.ParsedTask
}

// Options tunes the completion request.
type Options struct {
	Temperature float64
	MaxTokens   int
}
