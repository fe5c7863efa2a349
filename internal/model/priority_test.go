package model

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"urgent", PriorityUrgent, true},
		{"URGENT", PriorityUrgent, true},
		{"High", PriorityHigh, true},
		{" low ", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"banana", PriorityMedium, false},
		{"", PriorityMedium, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParsePriority(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParsePriority(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPriorityOrdering(t *testing.T) {
	ps := Priorities()
	for i := 1; i < len(ps); i++ {
		if ps[i-1] >= ps[i] {
			t.Errorf("expected %v < %v", ps[i-1], ps[i])
		}
	}
	if Priority(42).String() != "MEDIUM" {
		t.Error("out-of-range priority should print as MEDIUM")
	}
}

func TestPriorityText(t *testing.T) {
	b, _ := PriorityHigh.MarshalText()
	if string(b) != "HIGH" {
		t.Errorf("unexpected %s", b)
	}
	var p Priority
	_ = p.UnmarshalText([]byte("banana"))
	if p != PriorityMedium {
		t.Errorf("expected MEDIUM, got %v", p)
	}
}
