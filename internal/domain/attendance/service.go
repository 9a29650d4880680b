package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in for the authenticated employee.
	// A repeated check-in is a no-op returning the existing record.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut records today's check-out and finalizes classification.
	// A repeated check-out is a no-op returning the existing record.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// GetRecord retrieves a single record by id
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// UpdateRecord fixes punch data on a record and re-classifies it
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// DeleteRecord removes a record
	DeleteRecord(ctx context.Context, id string) error

	// ReclassifyRange re-runs classification over an employee's records in
	// an inclusive date range. Best effort: per-day failures are logged
	// and skipped, cancellation stops between days.
	ReclassifyRange(ctx context.Context, employeeID string, start, end time.Time) error

	// ReclassifyForSchedule re-classifies the trailing window for every
	// employee affected by a schedule, after schedule edits.
	ReclassifyForSchedule(ctx context.Context, scheduleID string) error
}
