package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-todo/internal/aiparse"
	"ai-todo/internal/model"
	"ai-todo/pkg/deepseek"
)

func TestParse_SupermarketExample(t *testing.T) {
	client := &mockDeepSeek{content: "好的，结果如下：\n```json\n" +
		`{"title":"去楼下超市买东西","description":"","priority":"MEDIUM","dueDate":"2025-11-03 17:38","subTasks":[],"reasoning":"今天晚上"}` +
		"\n```"}
	uc, seen := newTestUseCase(t, client, nil, nil)

	out, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "今天晚上17:38去楼下超市买东西", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Task
	if !strings.Contains(got.Title, "超市") {
		t.Errorf("title %q should mention 超市", got.Title)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("priority = %s, want MEDIUM", got.Priority)
	}
	shanghai, _ := time.LoadLocation("Asia/Shanghai")
	want := time.Date(2025, 11, 3, 17, 38, 0, 0, shanghai)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("dueDate = %v, want %v", got.DueDate, want)
	}
	if got.SubTasks == nil || len(got.SubTasks) != 0 {
		t.Errorf("expected empty subtask list, got %#v", got.SubTasks)
	}

	if len(*seen) != 1 || (*seen)[0] != "sk-test" {
		t.Errorf("factory saw keys %v", *seen)
	}
	req := client.lastReq
	if req.Temperature != 0.1 || req.MaxTokens != 500 || len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		t.Errorf("unexpected request %+v", req)
	}
	if !strings.Contains(req.Messages[0].Content, "2025-11-03 09:00") {
		t.Error("prompt should carry the current local time")
	}
	if !strings.Contains(req.Messages[0].Content, "今天晚上17:38去楼下超市买东西") {
		t.Error("prompt should carry the user text")
	}
}

func TestParse_InputValidation(t *testing.T) {
	t.Run("blank text makes no call", func(t *testing.T) {
		client := &mockDeepSeek{}
		uc, _ := newTestUseCase(t, client, nil, nil)

		_, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "  \n", APIKey: "k"})
		if !errors.Is(err, aiparse.ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
		if client.calls != 0 {
			t.Errorf("expected no remote call, got %d", client.calls)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		client := &mockDeepSeek{}
		uc, _ := newTestUseCase(t, client, staticKeys("  "), nil)

		_, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "buy milk"})
		if !errors.Is(err, aiparse.ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("stored key is used when request has none", func(t *testing.T) {
		client := &mockDeepSeek{content: `{"title":"milk"}`}
		uc, seen := newTestUseCase(t, client, staticKeys("stored"), nil)

		if _, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "buy milk"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if (*seen)[0] != "stored" {
			t.Errorf("factory saw %v", *seen)
		}
	})
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *mockDeepSeek
		want   error
	}{
		{
			name:   "api error",
			client: &mockDeepSeek{err: errors.New("deepseek: API returned an error status: 401: Authentication Fails")},
			want:   aiparse.ErrAPIRequest,
		},
		{
			name:   "undecodable reply",
			client: &mockDeepSeek{err: deepseek.ErrBadResponse},
			want:   aiparse.ErrResponseShape,
		},
		{
			name:   "no choices",
			client: &mockDeepSeek{response: &deepseek.Response{}},
			want:   aiparse.ErrResponseShape,
		},
		{
			name:   "no braces",
			client: &mockDeepSeek{content: "Sorry, I cannot help with that."},
			want:   aiparse.ErrNoJSONObject,
		},
		{
			name:   "reversed braces",
			client: &mockDeepSeek{content: "} nope {"},
			want:   aiparse.ErrNoJSONObject,
		},
		{
			name:   "broken json",
			client: &mockDeepSeek{content: `{"title": "x", }`},
			want:   aiparse.ErrMalformedJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, tt.client, nil, nil)
			out, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "something", APIKey: "k"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if out.Task.Title != "" {
				t.Errorf("expected no partial result, got %+v", out.Task)
			}
		})
	}

	t.Run("api error message is preserved", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockDeepSeek{err: errors.New("401: Authentication Fails")}, nil, nil)
		_, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "x", APIKey: "k"})
		if !strings.Contains(err.Error(), "Authentication Fails") {
			t.Errorf("message lost: %v", err)
		}
	})
}

func TestParse_FieldFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		check func(t *testing.T, p model.ParsedTask)
	}{
		{
			name:  "lowercase urgent",
			reply: `{"title":"Fix prod","priority":"urgent"}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.Priority != model.PriorityUrgent {
					t.Errorf("priority = %s", p.Priority)
				}
			},
		},
		{
			name:  "unknown priority",
			reply: `{"title":"Eat","priority":"banana"}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.Priority != model.PriorityMedium {
					t.Errorf("priority = %s", p.Priority)
				}
			},
		},
		{
			name:  "missing title",
			reply: `{"description":"d"}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.Title != aiparse.DefaultTitle || p.Description != "d" {
					t.Errorf("got %+v", p)
				}
			},
		},
		{
			name:  "non-string title",
			reply: `{"title": 42}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.Title != aiparse.DefaultTitle {
					t.Errorf("title = %q", p.Title)
				}
			},
		},
		{
			name:  "epoch seconds",
			reply: `{"title":"x","dueDate":1735000000}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.DueDate == nil || p.DueDate.UnixMilli() != 1735000000000 {
					t.Errorf("dueDate = %v", p.DueDate)
				}
			},
		},
		{
			name:  "epoch millis",
			reply: `{"title":"x","dueDate":1735000000000}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.DueDate == nil || p.DueDate.UnixMilli() != 1735000000000 {
					t.Errorf("dueDate = %v", p.DueDate)
				}
			},
		},
		{
			name:  "null and garbage dates",
			reply: `{"title":"x","dueDate":null}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.DueDate != nil {
					t.Errorf("dueDate = %v", p.DueDate)
				}
			},
		},
		{
			name:  "unparseable date string",
			reply: `{"title":"x","dueDate":"someday"}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.DueDate != nil {
					t.Errorf("dueDate = %v", p.DueDate)
				}
			},
		},
		{
			name:  "subtasks trimmed and filtered",
			reply: `{"title":"Report","subTasks":[" data ", "", 3, null, "slides"]}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if len(p.SubTasks) != 2 || p.SubTasks[0] != "data" || p.SubTasks[1] != "slides" {
					t.Errorf("subTasks = %#v", p.SubTasks)
				}
			},
		},
		{
			name:  "subtasks not an array",
			reply: `{"title":"Report","subTasks":"data"}`,
			check: func(t *testing.T, p model.ParsedTask) {
				if p.SubTasks == nil || len(p.SubTasks) != 0 {
					t.Errorf("subTasks = %#v", p.SubTasks)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, &mockDeepSeek{content: tt.reply}, nil, nil)
			out, err := uc.Parse(context.Background(), aiparse.ParseInput{Text: "x", APIKey: "k"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, out.Task)
		})
	}
}

func TestParseAndAdd(t *testing.T) {
	t.Run("adds the parsed task", func(t *testing.T) {
		adder := &recordingAdder{}
		uc, _ := newTestUseCase(t, &mockDeepSeek{content: `{"title":"Report","priority":"HIGH","subTasks":["a"]}`}, nil, adder)

		out, err := uc.ParseAndAdd(context.Background(), aiparse.ParseInput{Text: "report", APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(adder.added) != 1 || adder.added[0].Title != "Report" || out.Task.Title != "Report" {
			t.Errorf("unexpected adds %+v", adder.added)
		}
	})

	t.Run("failed parse adds nothing", func(t *testing.T) {
		adder := &recordingAdder{}
		uc, _ := newTestUseCase(t, &mockDeepSeek{content: "no json"}, nil, adder)

		if _, err := uc.ParseAndAdd(context.Background(), aiparse.ParseInput{Text: "report", APIKey: "k"}); err == nil {
			t.Fatal("expected error")
		}
		if len(adder.added) != 0 {
			t.Errorf("unexpected adds %+v", adder.added)
		}
	})

	t.Run("without a board", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockDeepSeek{}, nil, nil)
		if _, err := uc.ParseAndAdd(context.Background(), aiparse.ParseInput{Text: "x", APIKey: "k"}); !errors.Is(err, aiparse.ErrNoTaskAdder) {
			t.Fatalf("expected ErrNoTaskAdder, got %v", err)
		}
	})
}

func TestExtractJSONObject(t *testing.T) {
	got, err := extractJSONObject(`prefix {"a":{"b":1}} suffix`)
	if err != nil || got != `{"a":{"b":1}}` {
		t.Errorf("got %q, %v", got, err)
	}
}
