package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// At most one record exists per (employee, day); Upsert relies on the
// unique index so a punch race collapses to a single row, newest wins.
type AttendanceRepository interface {
	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on
	// a specific day. Returns nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListByEmployeeAndRange retrieves records for an employee over an
	// inclusive date range, ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// Upsert inserts or replaces the record for (employee, date)
	Upsert(ctx context.Context, rec Record) (Record, error)

	// Update updates an existing record by id
	Update(ctx context.Context, rec Record) error

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}
