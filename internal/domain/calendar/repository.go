package calendar

import (
	"context"
	"time"
)

// CalendarEntryRepository defines data access methods for calendar entries.
type CalendarEntryRepository interface {
	// GetByDate retrieves the entry applying to a date, recurring-aware:
	// exact (year, month, day) or (recurring AND month, day).
	// Returns nil when no entry applies.
	GetByDate(ctx context.Context, date time.Time) (*CalendarEntry, error)

	// GetByID retrieves an entry by id
	GetByID(ctx context.Context, id string) (CalendarEntry, error)

	// List retrieves all entries
	List(ctx context.Context) ([]CalendarEntry, error)

	// Create creates a new entry
	Create(ctx context.Context, entry CalendarEntry) (CalendarEntry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id string) error
}
