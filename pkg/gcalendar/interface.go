package gcalendar

import "context"

// ICalendar is the subset of the Calendar API the task board mirrors into.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
