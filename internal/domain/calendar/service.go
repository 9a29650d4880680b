package calendar

import (
	"context"
	"time"
)

// CalendarService answers working-day questions and manages entries.
type CalendarService interface {
	// IsWorkingDate reports whether the organization works on a date.
	// Calendar entries win over the weekend default; a short day still
	// counts as working.
	IsWorkingDate(ctx context.Context, date time.Time) (bool, error)

	// IsWorkingDateForEmployee additionally requires the employee's
	// resolved schedule to mark the weekday as working. No resolvable
	// schedule yields false.
	IsWorkingDateForEmployee(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// FindEntry returns the entry applying to a date, nil when none
	FindEntry(ctx context.Context, date time.Time) (*CalendarEntry, error)

	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	ListEntries(ctx context.Context) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}
