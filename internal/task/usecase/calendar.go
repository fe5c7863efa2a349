package usecase

import (
	"context"
	"time"

	"ai-todo/internal/model"
	"ai-todo/pkg/gcalendar"
)

// calendarEventDuration is the length of a mirrored event ending at the due date.
const calendarEventDuration = time.Hour

// tryCreateCalendarEvent mirrors a dated task into Google Calendar.
// Returns the event link, or "" when skipped or failed (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calOpts.CalendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   t.DueDate.Add(-calendarEventDuration),
		EndTime:     *t.DueDate,
		Timezone:    uc.calOpts.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	uc.l.Infof(ctx, "task.usecase: calendar event %s created for %q", event.ID, t.Title)
	return event.HTMLLink
}
