package schedule

import "context"

// WorkScheduleRepository defines data access methods for work schedules.
// The department and catch-all lookups order by id so resolution is
// deterministic when several schedules qualify.
type WorkScheduleRepository interface {
	// GetByID retrieves a schedule by id
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// GetByDepartmentID retrieves the first schedule attached to a
	// department (lowest id). Returns nil when none exists.
	GetByDepartmentID(ctx context.Context, departmentID string) (*WorkSchedule, error)

	// GetAny retrieves the first schedule in the system (lowest id).
	// Returns nil when no schedule exists at all.
	GetAny(ctx context.Context) (*WorkSchedule, error)

	// List retrieves all schedules
	List(ctx context.Context) ([]WorkSchedule, error)

	// Create creates a new schedule
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	// Update updates an existing schedule
	Update(ctx context.Context, ws WorkSchedule) error
}
