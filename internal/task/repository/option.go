package repository

// View selects the filter and ordering of a List call.
type View string

const (
	// ViewAll is every row, newest first.
	ViewAll View = "all"
	// ViewIncomplete is open rows by priority desc, then due date asc (nulls last).
	ViewIncomplete View = "incomplete"
	// ViewCompleted is done rows, most recently completed first.
	ViewCompleted View = "completed"
)

// ListOptions holds the parameters for listing rows.
type ListOptions struct {
	View View
}

// CountOptions holds the parameters for counting rows. ViewAll counts everything.
type CountOptions struct {
	View View
}
