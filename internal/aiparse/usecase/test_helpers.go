package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"ai-todo/internal/aiparse"
	"ai-todo/internal/model"
	"ai-todo/pkg/datemath"
	"ai-todo/pkg/deepseek"
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

// mockDeepSeek replies with a fixed content string or error.
type mockDeepSeek struct {
	content  string
	response *deepseek.Response
	err      error

	calls   int
	lastReq *deepseek.Request
}

func (m *mockDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &deepseek.Response{
		Choices: []deepseek.Choice{{Message: &deepseek.Message{Role: "assistant", Content: m.content}}},
	}, nil
}

type staticKeys string

func (k staticKeys) APIKey() string { return string(k) }

type recordingAdder struct {
	mu    sync.Mutex
	added []model.ParsedTask
}

func (r *recordingAdder) AddParsed(ctx context.Context, p model.ParsedTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, p)
}

// fixedNow is 2025-11-03 09:00 in Asia/Shanghai.
var fixedNow = time.Date(2025, 11, 3, 1, 0, 0, 0, time.UTC)

// newTestUseCase wires the use case to client and records the keys the factory saw.
func newTestUseCase(t *testing.T, client *mockDeepSeek, keys aiparse.KeyProvider, adder aiparse.TaskAdder) (*implUseCase, *[]string) {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	var seen []string
	factory := func(apiKey string) (deepseek.IDeepSeek, error) {
		seen = append(seen, apiKey)
		return client, nil
	}

	uc := New(&mockLogger{}, factory, dates, keys, adder, aiparse.Options{}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc, &seen
}
