package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	employeeRepo  employee.EmployeeRepository
	windowDays    int
}

func NewAttendanceJobs(
	attendanceSvc attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	windowDays int,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		employeeRepo:  employeeRepo,
		windowDays:    windowDays,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reclassify_recent_attendance", 1*time.Hour, j.ReclassifyRecentAttendance)
}

// ReclassifyRecentAttendance re-runs classification over the trailing
// window for every employee, picking up schedule and calendar edits that
// happened after records were written.
func (j *AttendanceJobs) ReclassifyRecentAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance reclassification job")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -j.windowDays)

	failed := 0
	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.attendanceSvc.ReclassifyRange(ctx, emp.ID, start, end); err != nil {
			failed++
			slog.Error("Cron: Failed to reclassify employee",
				"employee_id", emp.ID,
				"error", err)
		}
	}

	slog.Info("Cron: Attendance reclassification job finished",
		"employees", len(employees),
		"failed", failed,
		"window_days", j.windowDays)

	return nil
}
