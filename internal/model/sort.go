package model

import (
	"cmp"
	"slices"
)

// SortIncomplete orders tasks by priority descending, then due date ascending.
// Tasks without a due date go after dated ones of the same priority.
// The sort is stable, so ties keep their incoming order.
func SortIncomplete(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		}
		return a.DueDate.Compare(*b.DueDate)
	})
}

// SplitByCompletion partitions tasks, preserving relative order in each half.
func SplitByCompletion(tasks []Task) (incomplete, completed []Task) {
	incomplete = make([]Task, 0, len(tasks))
	completed = make([]Task, 0)
	for _, t := range tasks {
		if t.IsCompleted {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return incomplete, completed
}
