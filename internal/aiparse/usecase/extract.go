package usecase

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"ai-todo/internal/aiparse"
	"ai-todo/internal/model"
)

// extractJSONObject returns the text from the first '{' to the last '}'.
func extractJSONObject(reply string) (string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", aiparse.ErrNoJSONObject
	}
	return reply[start : end+1], nil
}

// decodeTask maps a JSON object onto a ParsedTask. Only a candidate that is
// not a JSON object fails; every field falls back on its own.
func (uc *implUseCase) decodeTask(candidate string, now time.Time) (model.ParsedTask, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return model.ParsedTask{}, aiparse.ErrMalformedJSON
	}

	title := strings.TrimSpace(stringField(fields, "title"))
	if title == "" {
		title = aiparse.DefaultTitle
	}

	return model.ParsedTask{
		Title:       title,
		Description: strings.TrimSpace(stringField(fields, "description")),
		Priority:    model.PriorityOrDefault(stringField(fields, "priority")),
		DueDate:     uc.dueDate(fields["dueDate"], now),
		Reasoning:   strings.TrimSpace(stringField(fields, "reasoning")),
		SubTasks:    subTasks(fields["subTasks"]),
	}, nil
}

// stringField returns "" for a missing or non-string field.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (uc *implUseCase) dueDate(raw json.RawMessage, now time.Time) *time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return uc.dates.Parse(s, now)
	case 'n':
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return nil
		}
		v = int64(f)
	}
	t := uc.dates.FromEpoch(v)
	return &t
}

func subTasks(raw json.RawMessage) []string {
	out := []string{}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
