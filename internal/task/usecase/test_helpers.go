package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"ai-todo/internal/model"
	"ai-todo/internal/task"
	"ai-todo/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStorage = errors.New("disk full")

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu       sync.Mutex
	tasks    map[string]model.Task
	failWith error
}

func newMemRepo(seed ...model.Task) *memRepo {
	r := &memRepo{tasks: make(map[string]model.Task)}
	for _, t := range seed {
		r.tasks[t.ID] = t.Clone()
	}
	return r
}

func (r *memRepo) Insert(ctx context.Context, t model.Task) error { return r.put(t) }
func (r *memRepo) Update(ctx context.Context, t model.Task) error { return r.put(t) }

func (r *memRepo) put(t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.tasks[t.ID] = t.Clone()
	return nil
}

func (r *memRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return r.failWith
}

func (r *memRepo) DeleteCompleted(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.IsCompleted {
			delete(r.tasks, id)
		}
	}
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	c := t.Clone()
	return &c, nil
}

// ListAll orders newest first like the gateway.
func (r *memRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRepo) ListIncomplete(ctx context.Context) ([]model.Task, error) {
	all, _ := r.ListAll(ctx)
	inc, _ := model.SplitByCompletion(all)
	model.SortIncomplete(inc)
	return inc, nil
}

func (r *memRepo) ListCompleted(ctx context.Context) ([]model.Task, error) {
	all, _ := r.ListAll(ctx)
	_, done := model.SplitByCompletion(all)
	return done, nil
}

func (r *memRepo) CountAll(ctx context.Context) (int, error) {
	all, _ := r.ListAll(ctx)
	return len(all), nil
}

func (r *memRepo) CountIncomplete(ctx context.Context) (int, error) {
	inc, _ := r.ListIncomplete(ctx)
	return len(inc), nil
}

func (r *memRepo) CountCompleted(ctx context.Context) (int, error) {
	done, _ := r.ListCompleted(ctx)
	return len(done), nil
}

func (r *memRepo) Watch(ctx context.Context) (<-chan []model.Task, error) {
	ch := make(chan []model.Task, 1)
	all, _ := r.ListAll(ctx)
	ch <- all
	return ch, nil
}

func (r *memRepo) get(id string) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	return t, ok
}

// mockCalendar records CreateEvent calls.
type mockCalendar struct {
	mu    sync.Mutex
	calls []gcalendar.CreateEventRequest
	err   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HTMLLink: "https://calendar.example/evt-1"}, nil
}

var base = time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

// newTestBoard builds a board with a fixed clock.
func newTestBoard(t *testing.T, repo *memRepo, cal gcalendar.ICalendar, hook task.ErrorHook) *implUseCase {
	t.Helper()
	uc := New(&mockLogger{}, repo, cal, task.CalendarOptions{CalendarID: "primary", Timezone: "UTC"}, hook).(*implUseCase)
	uc.now = func() time.Time { return base }
	return uc
}

func seedTask(id, title string, p model.Priority, created time.Duration) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		Priority:  p,
		SubTasks:  []model.SubTask{},
		CreatedAt: base.Add(created),
	}
}
