package model

import "strings"

// Priority is an ordered importance level. Higher values sort first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = [...]string{"LOW", "MEDIUM", "HIGH", "URGENT"}

// Priorities lists every level in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// String returns the canonical upper-case name.
func (p Priority) String() string {
	if !p.IsValid() {
		return priorityNames[PriorityMedium]
	}
	return priorityNames[p]
}

// IsValid reports whether p is one of the four defined levels.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// ParsePriority maps a name onto a Priority, ignoring case.
func ParsePriority(name string) (Priority, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), true
		}
	}
	return PriorityMedium, false
}

// PriorityOrDefault is ParsePriority falling back to MEDIUM.
func PriorityOrDefault(name string) Priority {
	p, _ := ParsePriority(name)
	return p
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names become MEDIUM.
func (p *Priority) UnmarshalText(b []byte) error {
	*p = PriorityOrDefault(string(b))
	return nil
}
