package usecase

import (
	"time"

	"ai-todo/internal/aiparse"
	"ai-todo/pkg/datemath"
	"ai-todo/pkg/deepseek"
	pkgLog "ai-todo/pkg/log"
)

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 500
)

type implUseCase struct {
	l         pkgLog.Logger
	newClient deepseek.Factory
	dates     *datemath.Parser
	keys      aiparse.KeyProvider
	adder     aiparse.TaskAdder
	opts      aiparse.Options
	now       func() time.Time
}

// New creates a new aiparse UseCase. keys and adder may be nil.
func New(
	l pkgLog.Logger,
	newClient deepseek.Factory,
	dates *datemath.Parser,
	keys aiparse.KeyProvider,
	adder aiparse.TaskAdder,
	opts aiparse.Options,
) aiparse.UseCase {
	if opts.Temperature <= 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	return &implUseCase{
		l:         l,
		newClient: newClient,
		dates:     dates,
		keys:      keys,
		adder:     adder,
		opts:      opts,
		now:       time.Now,
	}
}
