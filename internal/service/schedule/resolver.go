package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
)

// resolution is one step in the fallback chain. A nil schedule with a
// nil error is a miss; the next step runs.
type resolution func(ctx context.Context, emp employee.Employee) (*schedule.WorkSchedule, error)

type ResolverImpl struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.WorkScheduleRepository
}

func NewResolver(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) schedule.ScheduleResolver {
	return &ResolverImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Resolve implements schedule.ScheduleResolver. Ordered fallback, first
// hit wins: employee's direct schedule, then the employee's department
// schedule, then any schedule in the system. Returns nil when no
// schedule exists at all.
func (r *ResolverImpl) Resolve(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	emp, err := r.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee for schedule resolution: %w", err)
	}

	strategies := []resolution{
		r.byEmployee,
		r.byDepartment,
		r.anySchedule,
	}

	for _, strategy := range strategies {
		ws, err := strategy(ctx, emp)
		if err != nil {
			return nil, err
		}
		if ws != nil {
			return r.effective(emp, ws), nil
		}
	}

	return nil, nil
}

// byEmployee resolves the employee's directly assigned schedule.
func (r *ResolverImpl) byEmployee(ctx context.Context, emp employee.Employee) (*schedule.WorkSchedule, error) {
	if emp.WorkScheduleID == nil || *emp.WorkScheduleID == "" {
		return nil, nil
	}

	ws, err := r.scheduleRepo.GetByID(ctx, *emp.WorkScheduleID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			// Dangling reference; fall through to the next step.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get direct schedule: %w", err)
	}

	return &ws, nil
}

// byDepartment resolves a schedule attached to the employee's
// department. When several qualify the repository returns the lowest id;
// known limitation, see DESIGN.md.
func (r *ResolverImpl) byDepartment(ctx context.Context, emp employee.Employee) (*schedule.WorkSchedule, error) {
	if emp.DepartmentID == nil || *emp.DepartmentID == "" {
		return nil, nil
	}

	ws, err := r.scheduleRepo.GetByDepartmentID(ctx, *emp.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get department schedule: %w", err)
	}

	return ws, nil
}

// anySchedule is the last-resort default: any schedule in the system.
func (r *ResolverImpl) anySchedule(ctx context.Context, _ employee.Employee) (*schedule.WorkSchedule, error) {
	ws, err := r.scheduleRepo.GetAny(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fallback schedule: %w", err)
	}

	return ws, nil
}

// effective applies the employee's flexible-hours override on top of the
// resolved schedule: a flexible-hours employee is evaluated on total
// hours even when the schedule itself is fixed.
func (r *ResolverImpl) effective(emp employee.Employee, ws *schedule.WorkSchedule) *schedule.WorkSchedule {
	if !emp.FlexibleHours || ws.IsFlexible {
		if ws.IsFlexible && ws.TotalWorkHours == 0 && emp.RequiredHoursPerDay > 0 {
			adjusted := *ws
			adjusted.TotalWorkHours = emp.RequiredHoursPerDay
			return &adjusted
		}
		return ws
	}

	adjusted := *ws
	adjusted.IsFlexible = true
	if emp.RequiredHoursPerDay > 0 {
		adjusted.TotalWorkHours = emp.RequiredHoursPerDay
	} else {
		adjusted.TotalWorkHours = ws.ExpectedHours()
	}
	return &adjusted
}
