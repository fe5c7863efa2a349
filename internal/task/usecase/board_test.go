package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-todo/internal/model"
	"ai-todo/internal/task"
)

func TestBoardState(t *testing.T) {
	uc := newTestBoard(t, newMemRepo(), nil, nil)

	if s := uc.State(); s.ShowAddDialog || s.IncompleteCollapsed || s.CompletedCollapsed || s.EditingTask != nil {
		t.Fatalf("unexpected initial state %+v", s)
	}

	uc.ShowAddDialog()
	uc.ToggleIncompleteCollapsed()
	uc.ToggleCompletedCollapsed()
	uc.ToggleCompletedCollapsed()
	s := uc.State()
	if !s.ShowAddDialog || !s.IncompleteCollapsed || s.CompletedCollapsed {
		t.Errorf("unexpected state %+v", s)
	}

	uc.HideAddDialog()
	if uc.State().ShowAddDialog {
		t.Error("dialog should be hidden")
	}

	t.Run("editing snapshot is a copy", func(t *testing.T) {
		editing := seedTask("a", "A", model.PriorityLow, 0)
		editing.SubTasks = []model.SubTask{{ID: "s", Title: "s"}}
		uc.StartEditing(editing)

		got := uc.State().EditingTask
		if got == nil || got.ID != "a" {
			t.Fatalf("unexpected editing task %+v", got)
		}
		got.SubTasks[0].Title = "mutated"
		if uc.State().EditingTask.SubTasks[0].Title != "s" {
			t.Error("state leaked through snapshot")
		}

		uc.CancelEditing()
		if uc.State().EditingTask != nil {
			t.Error("editing not cleared")
		}
	})
}

func TestAddTask(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and defaults", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestBoard(t, repo, nil, nil)

		uc.AddTask(ctx, task.AddTaskInput{
			Title:       "  Report  ",
			Description: " Q4 ",
			Priority:    model.Priority(42),
			SubTasks:    []string{"data", "  ", "slides"},
		})
		uc.Wait()

		all, _ := repo.ListAll(ctx)
		if len(all) != 1 {
			t.Fatalf("expected 1 task, got %d", len(all))
		}
		got := all[0]
		if got.Title != "Report" || got.Description != "Q4" || got.Priority != model.PriorityMedium {
			t.Errorf("unexpected task %+v", got)
		}
		if got.IsCompleted || got.CompletedAt != nil || !got.CreatedAt.Equal(base) {
			t.Errorf("unexpected completion fields %+v", got)
		}
		if len(got.SubTasks) != 2 || got.SubTasks[0].Title != "data" || got.SubTasks[1].Title != "slides" {
			t.Errorf("unexpected subtasks %+v", got.SubTasks)
		}
	})

	t.Run("blank title is dropped", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestBoard(t, repo, nil, nil)

		uc.AddTask(ctx, task.AddTaskInput{Title: "   "})
		uc.Wait()

		if n, _ := repo.CountAll(ctx); n != 0 {
			t.Errorf("expected empty store, got %d", n)
		}
	})

	t.Run("survives request cancellation", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestBoard(t, repo, nil, nil)

		reqCtx, cancel := context.WithCancel(ctx)
		uc.AddTask(reqCtx, task.AddTaskInput{Title: "x"})
		cancel()
		uc.Wait()

		if n, _ := repo.CountAll(ctx); n != 1 {
			t.Errorf("expected the write to land, got %d tasks", n)
		}
	})

	t.Run("storage failure goes to the hook", func(t *testing.T) {
		repo := newMemRepo()
		repo.failWith = errStorage

		var (
			mu     sync.Mutex
			gotOp  string
			gotErr error
		)
		uc := newTestBoard(t, repo, nil, func(op string, err error) {
			mu.Lock()
			defer mu.Unlock()
			gotOp, gotErr = op, err
		})

		uc.AddTask(ctx, task.AddTaskInput{Title: "x"})
		uc.Wait()

		mu.Lock()
		defer mu.Unlock()
		if gotOp != "AddTask" || !errors.Is(gotErr, errStorage) {
			t.Errorf("hook got (%q, %v)", gotOp, gotErr)
		}
	})
}

func TestAddTask_CalendarMirror(t *testing.T) {
	ctx := context.Background()
	due := base.Add(48 * time.Hour)

	t.Run("dated task creates a one hour event", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestBoard(t, newMemRepo(), cal, nil)

		uc.AddTask(ctx, task.AddTaskInput{Title: "Report", DueDate: &due})
		uc.AddTask(ctx, task.AddTaskInput{Title: "Undated"})
		uc.Wait()

		if len(cal.calls) != 1 {
			t.Fatalf("expected 1 event, got %d", len(cal.calls))
		}
		req := cal.calls[0]
		if req.Summary != "Report" || !req.EndTime.Equal(due) || !req.StartTime.Equal(due.Add(-time.Hour)) || req.CalendarID != "primary" {
			t.Errorf("unexpected event request %+v", req)
		}
	})

	t.Run("calendar failure is not fatal", func(t *testing.T) {
		cal := &mockCalendar{err: errors.New("quota")}
		repo := newMemRepo()
		hookCalled := false
		uc := newTestBoard(t, repo, cal, func(string, error) { hookCalled = true })

		uc.AddTask(ctx, task.AddTaskInput{Title: "Report", DueDate: &due})
		uc.Wait()

		if n, _ := repo.CountAll(ctx); n != 1 {
			t.Errorf("task should still be stored")
		}
		if hookCalled {
			t.Error("calendar failure should not reach the error hook")
		}
	})
}

func TestAddParsed(t *testing.T) {
	repo := newMemRepo()
	uc := newTestBoard(t, repo, nil, nil)
	due := base.Add(time.Hour)

	uc.AddParsed(context.Background(), model.ParsedTask{
		Title:    "Report",
		Priority: model.PriorityUrgent,
		DueDate:  &due,
		SubTasks: []string{"data", "summary"},
	})
	uc.Wait()

	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 task, got %d", len(all))
	}
	got := all[0]
	if got.Priority != model.PriorityUrgent || got.DueDate == nil || len(got.SubTasks) != 2 {
		t.Errorf("unexpected task %+v", got)
	}
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(seedTask("a", "A", model.PriorityLow, 0))
	uc := newTestBoard(t, repo, nil, nil)

	uc.ToggleCompletion(ctx, "a")
	uc.Wait()
	got, _ := repo.get("a")
	if !got.IsCompleted || got.CompletedAt == nil || !got.CompletedAt.Equal(base) {
		t.Fatalf("expected completed with timestamp, got %+v", got)
	}

	uc.now = func() time.Time { return base.Add(time.Hour) }
	uc.ToggleCompletion(ctx, "a")
	uc.Wait()
	got, _ = repo.get("a")
	if got.IsCompleted || got.CompletedAt != nil {
		t.Fatalf("expected incomplete without timestamp, got %+v", got)
	}

	t.Run("missing id is ignored", func(t *testing.T) {
		hookCalled := false
		uc := newTestBoard(t, repo, nil, func(string, error) { hookCalled = true })
		uc.ToggleCompletion(ctx, "missing")
		uc.Wait()
		if hookCalled {
			t.Error("missing task should not be an error")
		}
		if _, ok := repo.get("missing"); ok {
			t.Error("missing task should not be created")
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	seed := seedTask("a", "Old", model.PriorityLow, 0)
	seed.SubTasks = []model.SubTask{{ID: "s1", Title: "keep", CreatedAt: base}}

	t.Run("replaces fields and closes the editor", func(t *testing.T) {
		repo := newMemRepo(seed)
		uc := newTestBoard(t, repo, nil, nil)
		uc.StartEditing(seed)

		due := base.Add(time.Hour)
		uc.UpdateTask(ctx, task.UpdateTaskInput{
			ID:          "a",
			Title:       " New ",
			Description: "desc",
			Priority:    model.PriorityHigh,
			DueDate:     &due,
			SubTasks: []model.SubTask{
				{ID: "s1", Title: "keep", IsCompleted: true, CreatedAt: base},
				{Title: "fresh"},
				{Title: "  "},
			},
		})
		uc.Wait()

		if uc.State().EditingTask != nil {
			t.Error("editor should be closed")
		}
		got, _ := repo.get("a")
		if got.Title != "New" || got.Description != "desc" || got.Priority != model.PriorityHigh || got.DueDate == nil {
			t.Errorf("unexpected task %+v", got)
		}
		if len(got.SubTasks) != 2 || !got.SubTasks[0].IsCompleted || got.SubTasks[1].ID == "" || got.SubTasks[1].Title != "fresh" {
			t.Errorf("unexpected subtasks %+v", got.SubTasks)
		}
		if !got.CreatedAt.Equal(seed.CreatedAt) {
			t.Error("CreatedAt must not change")
		}
	})

	t.Run("blank title is dropped and editor stays open", func(t *testing.T) {
		repo := newMemRepo(seed)
		uc := newTestBoard(t, repo, nil, nil)
		uc.StartEditing(seed)

		uc.UpdateTask(ctx, task.UpdateTaskInput{ID: "a", Title: " "})
		uc.Wait()

		if uc.State().EditingTask == nil {
			t.Error("editor should stay open")
		}
		if got, _ := repo.get("a"); got.Title != "Old" {
			t.Errorf("task changed: %+v", got)
		}
	})
}

func TestSubTaskOperations(t *testing.T) {
	ctx := context.Background()
	seed := seedTask("a", "A", model.PriorityLow, 0)
	seed.SubTasks = []model.SubTask{
		{ID: "s1", Title: "one", CreatedAt: base},
		{ID: "s2", Title: "two", CreatedAt: base},
	}
	repo := newMemRepo(seed)
	uc := newTestBoard(t, repo, nil, nil)

	uc.ToggleSubTask(ctx, "a", "s2")
	uc.Wait()
	got, _ := repo.get("a")
	if got.SubTasks[0].IsCompleted || !got.SubTasks[1].IsCompleted {
		t.Fatalf("unexpected subtasks after toggle %+v", got.SubTasks)
	}
	if got.IsCompleted {
		t.Error("parent completion must not follow subtasks")
	}

	uc.AddSubTask(ctx, "a", "  three ")
	uc.AddSubTask(ctx, "a", "   ")
	uc.Wait()
	got, _ = repo.get("a")
	if len(got.SubTasks) != 3 || got.SubTasks[2].Title != "three" || got.SubTasks[2].IsCompleted {
		t.Fatalf("unexpected subtasks after add %+v", got.SubTasks)
	}

	uc.DeleteSubTask(ctx, "a", "s1")
	uc.Wait()
	got, _ = repo.get("a")
	if len(got.SubTasks) != 2 || got.SubTasks[0].ID != "s2" {
		t.Fatalf("unexpected subtasks after delete %+v", got.SubTasks)
	}
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	done := seedTask("done", "Done", model.PriorityLow, 0).WithCompletion(true, base)
	repo := newMemRepo(seedTask("a", "A", model.PriorityLow, 0), seedTask("b", "B", model.PriorityLow, time.Minute), done)
	uc := newTestBoard(t, repo, nil, nil)

	uc.DeleteTask(ctx, "a")
	uc.Wait()
	if _, ok := repo.get("a"); ok {
		t.Error("task a should be gone")
	}

	uc.ClearCompleted(ctx)
	uc.Wait()
	all, _ := repo.ListAll(ctx)
	if len(all) != 1 || all[0].ID != "b" {
		t.Errorf("unexpected remaining tasks %+v", all)
	}
}

func TestSortedByPriority(t *testing.T) {
	ctx := context.Background()

	urgentDated := seedTask("urgent-dated", "u1", model.PriorityUrgent, 1*time.Minute)
	urgentDated.DueDate = ptr(base.Add(5 * time.Hour))
	urgentNil := seedTask("urgent-nil", "u2", model.PriorityUrgent, 2*time.Minute)
	high := seedTask("high", "h", model.PriorityHigh, 3*time.Minute)
	high.DueDate = ptr(base.Add(time.Hour))
	doneOld := seedTask("done-old", "d1", model.PriorityUrgent, 4*time.Minute).WithCompletion(true, base)
	doneNew := seedTask("done-new", "d2", model.PriorityLow, 5*time.Minute).WithCompletion(true, base)

	uc := newTestBoard(t, newMemRepo(urgentDated, urgentNil, high, doneOld, doneNew), nil, nil)

	got, err := uc.SortedByPriority(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"urgent-dated", "urgent-nil", "high", "done-new", "done-old"}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks", len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	viaList, _ := uc.List(ctx, task.ViewSorted)
	if len(viaList) != len(want) || viaList[0].ID != "urgent-dated" {
		t.Errorf("sorted view mismatch %+v", viaList)
	}
	if _, err := uc.List(ctx, "bogus"); !errors.Is(err, task.ErrUnknownView) {
		t.Errorf("expected ErrUnknownView, got %v", err)
	}

	n, _ := uc.IncompleteCount(ctx)
	counts, _ := uc.Counts(ctx)
	if n != 3 || counts.All != 5 || counts.Incomplete != 3 || counts.Completed != 2 {
		t.Errorf("unexpected counts %d %+v", n, counts)
	}
}

func TestDetail(t *testing.T) {
	uc := newTestBoard(t, newMemRepo(seedTask("a", "A", model.PriorityLow, 0)), nil, nil)

	if got, err := uc.Detail(context.Background(), "a"); err != nil || got.Title != "A" {
		t.Errorf("got %+v, %v", got, err)
	}
	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestInitializeSampleData(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an empty store", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestBoard(t, repo, nil, nil)

		uc.InitializeSampleData(ctx)
		uc.Wait()

		counts, _ := uc.Counts(ctx)
		if counts.All != 4 || counts.Completed != 2 {
			t.Fatalf("unexpected counts %+v", counts)
		}
		sorted, _ := uc.SortedByPriority(ctx)
		if sorted[0].Title != "App开发" || len(sorted[0].SubTasks) != 3 || sorted[0].CompletedSubTasksCount() != 1 {
			t.Errorf("unexpected first task %+v", sorted[0])
		}
		for _, s := range sorted[2:] {
			if s.CompletedAt == nil || !s.CompletedAt.Before(base) {
				t.Errorf("completed sample %q should carry a past CompletedAt", s.Title)
			}
		}
	})

	t.Run("leaves a populated store alone", func(t *testing.T) {
		repo := newMemRepo(seedTask("a", "A", model.PriorityLow, 0))
		uc := newTestBoard(t, repo, nil, nil)

		uc.InitializeSampleData(ctx)
		uc.Wait()

		if n, _ := repo.CountAll(ctx); n != 1 {
			t.Errorf("expected store untouched, got %d", n)
		}
	})
}
