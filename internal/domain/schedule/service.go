package schedule

import "context"

// WorkScheduleService defines business logic for work schedule management
type WorkScheduleService interface {
	// GetSchedule retrieves a schedule by id
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	// ListSchedules retrieves all schedules
	ListSchedules(ctx context.Context) ([]ScheduleResponse, error)

	// CreateSchedule creates a new schedule
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// UpdateSchedule patches a schedule and kicks off re-classification
	// of the affected employees' recent records in the background.
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
}
