package schedule

import "context"

// ScheduleResolver resolves the effective work schedule for an employee.
// A nil result with a nil error means no schedule exists anywhere i.e.
// the day cannot be classified; callers exclude such days from
// working-day computations instead of failing.
type ScheduleResolver interface {
	Resolve(ctx context.Context, employeeID string) (*WorkSchedule, error)
}
