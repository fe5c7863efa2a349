package datemath_test

import (
	"testing"
	"time"

	"ai-todo/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Shanghai"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	p, err := datemath.NewParser("")
	if err != nil || p.Location() != time.Local {
		t.Fatalf("empty timezone should use local zone, got %v %v", p, err)
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 11, 3, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{name: "minute layout", raw: "2025-11-03 17:38", want: at(2025, 11, 3, 17, 38)},
		{name: "surrounding spaces", raw: "  2025-11-04 09:00 ", want: at(2025, 11, 4, 9, 0)},
		{name: "RFC3339 with offset", raw: "2025-11-04T10:00:00+08:00", want: at(2025, 11, 4, 2, 0)},
		{name: "ISO seconds", raw: "2025-11-04T10:00:05", want: ptr(time.Date(2025, 11, 4, 10, 0, 5, 0, time.UTC))},
		{name: "ISO minutes", raw: "2025-11-04T10:00", want: at(2025, 11, 4, 10, 0)},
		{name: "month-day dash", raw: "12-25 08:00", want: at(2025, 12, 25, 8, 0)},
		{name: "month-day slash", raw: "12/25 08:00", want: at(2025, 12, 25, 8, 0)},
		{name: "clock only is today", raw: "18:00", want: at(2025, 11, 3, 18, 0)},
		{name: "date only is midnight", raw: "2025-11-05", want: at(2025, 11, 5, 0, 0)},
		{name: "regex fragment", raw: "due 11-7 9:30 please", want: at(2025, 11, 7, 9, 30)},
		{name: "regex rejects bad month", raw: "13-7 9:30", want: nil},
		{name: "blank", raw: "   ", want: nil},
		{name: "null literal", raw: "null", want: nil},
		{name: "garbage", raw: "next full moon", want: nil},
		{name: "impossible date", raw: "2025-02-30 10:00", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.raw, now)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Parse(%q) = %v, want nil", tt.raw, got)
			case tt.want != nil && got == nil:
				t.Errorf("Parse(%q) = nil, want %v", tt.raw, tt.want)
			case tt.want != nil && !got.Equal(*tt.want):
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_UsesParserZone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Shanghai")
	now := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	got := parser.Parse("2025-11-03 17:38", now)
	want := time.Date(2025, 11, 3, 9, 38, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if s := parser.FormatMinute(want); s != "2025-11-03 17:38" {
		t.Errorf("FormatMinute() = %q", s)
	}
}

func TestFromEpoch(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	t.Run("seconds are scaled", func(t *testing.T) {
		got := parser.FromEpoch(1735000000)
		if got.UnixMilli() != 1735000000000 {
			t.Errorf("got %d", got.UnixMilli())
		}
	})

	t.Run("milliseconds pass through", func(t *testing.T) {
		got := parser.FromEpoch(1735000000123)
		if got.UnixMilli() != 1735000000123 {
			t.Errorf("got %d", got.UnixMilli())
		}
	})
}

func at(y int, m time.Month, d, h, min int) *time.Time {
	return ptr(time.Date(y, m, d, h, min, 0, 0, time.UTC))
}

func ptr(t time.Time) *time.Time {
	return &t
}
