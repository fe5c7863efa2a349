package usecase

import (
	"context"
	"time"

	"ai-todo/internal/model"
)

// InitializeSampleData seeds a few demo tasks when the store is empty.
func (uc *implUseCase) InitializeSampleData(ctx context.Context) {
	uc.launch(ctx, "InitializeSampleData", func(ctx context.Context) error {
		n, err := uc.repo.CountAll(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		samples := sampleTasks(uc.now())
		for _, t := range samples {
			if err := uc.repo.Insert(ctx, t); err != nil {
				return err
			}
		}
		uc.l.Infof(ctx, "task.usecase.InitializeSampleData: seeded %d tasks", len(samples))
		return nil
	})
}

func sampleTasks(now time.Time) []model.Task {
	at := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}
	done := func(title string) model.SubTask {
		s := model.NewSubTask(title, now)
		s.IsCompleted = true
		return s
	}

	app := model.NewTask("App开发", "Todo List 待办清单开发", model.PriorityHigh, at(48*time.Hour), []model.SubTask{
		done("App开发"),
		model.NewSubTask("编写报告", now),
		model.NewSubTask("编写PPT", now),
	}, now)

	meal := model.NewTask("吃饭", "提前半小时点外卖", model.PriorityLow, nil, nil, now)
	meal = meal.WithCompletion(true, now.Add(-time.Hour))

	workout := model.NewTask("锻炼身体", "跑步30分钟", model.PriorityMedium, at(12*time.Hour), nil, now)

	reading := model.NewTask("阅读书籍", "《Jetpack Compose实战》第3章", model.PriorityLow, nil, []model.SubTask{
		done("阅读第一节"),
		done("实践例子"),
	}, now)
	reading = reading.WithCompletion(true, now.Add(-2*time.Hour))

	return []model.Task{app, meal, workout, reading}
}
