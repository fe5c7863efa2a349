package usecase

import (
	"sync"
	"time"

	"ai-todo/internal/task"
	"ai-todo/internal/task/repository"
	"ai-todo/pkg/gcalendar"
	pkgLog "ai-todo/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar gcalendar.ICalendar
	calOpts  task.CalendarOptions
	onError  task.ErrorHook
	now      func() time.Time

	mu    sync.Mutex
	state task.BoardState

	wg sync.WaitGroup
}

// New creates the task board. calendar and onError may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar gcalendar.ICalendar,
	calOpts task.CalendarOptions,
	onError task.ErrorHook,
) task.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		calOpts:  calOpts,
		onError:  onError,
		now:      time.Now,
	}
}
