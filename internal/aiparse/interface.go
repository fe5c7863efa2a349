package aiparse

import (
	"context"

	"ai-todo/internal/model"
)

// UseCase turns free text into a structured task through a chat-completion model.
type UseCase interface {
	// Parse extracts one task from input.Text. It makes exactly one remote call.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// ParseAndAdd parses and hands the result to the task board.
	ParseAndAdd(ctx context.Context, input ParseInput) (ParseOutput, error)
}

// TaskAdder receives confirmed parse results.
type TaskAdder interface {
	AddParsed(ctx context.Context, parsed model.ParsedTask)
}

// KeyProvider supplies the stored API key when a request does not carry one.
type KeyProvider interface {
	APIKey() string
}
