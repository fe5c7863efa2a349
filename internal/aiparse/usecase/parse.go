package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-todo/internal/aiparse"
	"ai-todo/pkg/deepseek"
)

// Parse sends the text to the model once and decodes its reply.
func (uc *implUseCase) Parse(ctx context.Context, input aiparse.ParseInput) (aiparse.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return aiparse.ParseOutput{}, aiparse.ErrEmptyInput
	}

	key := strings.TrimSpace(input.APIKey)
	if key == "" && uc.keys != nil {
		key = strings.TrimSpace(uc.keys.APIKey())
	}
	if key == "" {
		return aiparse.ParseOutput{}, aiparse.ErrMissingAPIKey
	}

	client, err := uc.newClient(key)
	if err != nil {
		if errors.Is(err, deepseek.ErrMissingAPIKey) {
			return aiparse.ParseOutput{}, aiparse.ErrMissingAPIKey
		}
		return aiparse.ParseOutput{}, fmt.Errorf("%w: %v", aiparse.ErrAPIRequest, err)
	}

	now := uc.now()
	resp, err := client.GenerateContent(ctx, &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: deepseek.RoleUser, Content: buildPrompt(input.Text, uc.dates.FormatMinute(now))},
		},
		Temperature: uc.opts.Temperature,
		MaxTokens:   uc.opts.MaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "aiparse.usecase.Parse: %v", err)
		if errors.Is(err, deepseek.ErrBadResponse) {
			return aiparse.ParseOutput{}, aiparse.ErrResponseShape
		}
		return aiparse.ParseOutput{}, fmt.Errorf("%w: %v", aiparse.ErrAPIRequest, err)
	}

	content, err := resp.FirstContent()
	if err != nil {
		return aiparse.ParseOutput{}, aiparse.ErrResponseShape
	}
	uc.l.Debugf(ctx, "aiparse.usecase.Parse: raw reply %q", content)

	candidate, err := extractJSONObject(content)
	if err != nil {
		uc.l.Warnf(ctx, "aiparse.usecase.Parse: no JSON object in reply %q", content)
		return aiparse.ParseOutput{}, err
	}

	parsed, err := uc.decodeTask(candidate, now)
	if err != nil {
		uc.l.Warnf(ctx, "aiparse.usecase.Parse: malformed JSON %q", candidate)
		return aiparse.ParseOutput{}, err
	}

	uc.l.Infof(ctx, "aiparse.usecase.Parse: title=%q priority=%s subtasks=%d", parsed.Title, parsed.Priority, len(parsed.SubTasks))
	return aiparse.ParseOutput{Task: parsed}, nil
}

// ParseAndAdd parses the text and queues the task on the board.
func (uc *implUseCase) ParseAndAdd(ctx context.Context, input aiparse.ParseInput) (aiparse.ParseOutput, error) {
	if uc.adder == nil {
		return aiparse.ParseOutput{}, aiparse.ErrNoTaskAdder
	}

	out, err := uc.Parse(ctx, input)
	if err != nil {
		return aiparse.ParseOutput{}, err
	}

	uc.adder.AddParsed(ctx, out.Task)
	return out, nil
}
