package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	resolver       schedule.ScheduleResolver
	hub            *sse.Hub
	recalcWindow   int // trailing days re-classified after schedule edits
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver schedule.ScheduleResolver,
	hub *sse.Hub,
	recalcWindowDays int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		resolver:       resolver,
		hub:            hub,
		recalcWindow:   recalcWindowDays,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// dayOf truncates a timestamp to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (a *AttendanceServiceImpl) punchTime(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// notifyChanged fires the attendance-changed signal. Fire and forget:
// nothing is awaited.
func (a *AttendanceServiceImpl) notifyChanged(rec attendance.Record) {
	if a.hub == nil {
		return
	}
	a.hub.Publish(rec.EmployeeID, sse.Event{
		EmployeeID: rec.EmployeeID,
		Event:      "attendance.changed",
		Data: map[string]interface{}{
			"record_id": rec.ID,
			"date":      rec.Date.Format("2006-01-02"),
			"status":    string(rec.Status),
		},
	})
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.punchTime(req.Timestamp)
	date := dayOf(now)

	if _, err := a.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	// Repeated check-in is a no-op returning the existing state.
	if existing != nil && existing.CheckIn != nil {
		return attendance.MapRecordToResponse(*existing), nil
	}

	rec := attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
	}
	if existing != nil {
		rec = *existing
	} else {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to generate record id: %w", err)
		}
		rec.ID = id.String()
	}
	rec.CheckIn = &now
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	sched, err := a.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	Classify(rec, sched, date).ApplyTo(&rec)

	saved, err := a.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	a.notifyChanged(saved)

	return attendance.MapRecordToResponse(saved), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.punchTime(req.Timestamp)
	date := dayOf(now)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}

	// Repeated check-out is a no-op returning the existing state.
	if existing.CheckOut != nil {
		return attendance.MapRecordToResponse(*existing), nil
	}

	rec := *existing
	rec.CheckOut = &now
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	sched, err := a.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	Classify(rec, sched, date).ApplyTo(&rec)

	saved, err := a.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	a.notifyChanged(saved)

	return attendance.MapRecordToResponse(saved), nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return attendance.MapRecordToResponse(rec), nil
}

// UpdateRecord implements attendance.AttendanceService.
// This allows managers to fix punch data like wrong clock times; the
// record is re-classified against the current schedule.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.CheckIn != nil {
		checkIn, err := time.Parse(time.RFC3339, *req.CheckIn)
		if err == nil {
			utc := checkIn.UTC()
			rec.CheckIn = &utc
		}
	}
	if req.CheckOut != nil {
		checkOut, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err == nil {
			utc := checkOut.UTC()
			rec.CheckOut = &utc
		}
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	sched, err := a.resolver.Resolve(ctx, rec.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	Classify(rec, sched, rec.Date).ApplyTo(&rec)

	if err := a.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	a.notifyChanged(rec)

	return attendance.MapRecordToResponse(rec), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	rec, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to get attendance record: %w", err)
	}

	if err := a.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	a.notifyChanged(rec)

	return nil
}

// ReclassifyRange implements attendance.AttendanceService. Best effort:
// a failed day is logged and skipped so the rest of the range still gets
// classified; cancellation stops cleanly between days.
func (a *AttendanceServiceImpl) ReclassifyRange(ctx context.Context, employeeID string, start, end time.Time) error {
	if end.Before(start) {
		return attendance.ErrInvalidDateRange
	}

	sched, err := a.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}

	records, err := a.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return fmt.Errorf("failed to list records for reclassification: %w", err)
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		Classify(rec, sched, rec.Date).ApplyTo(&rec)

		if err := a.attendanceRepo.Update(ctx, rec); err != nil {
			slog.Error("Failed to reclassify attendance record",
				"record_id", rec.ID,
				"employee_id", employeeID,
				"date", rec.Date.Format("2006-01-02"),
				"error", err)
			continue
		}
	}

	return nil
}

// ReclassifyForSchedule implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ReclassifyForSchedule(ctx context.Context, scheduleID string) error {
	employees, err := a.employeeRepo.ListByScheduleID(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to list employees for schedule: %w", err)
	}

	end := dayOf(time.Now().UTC())
	start := end.AddDate(0, 0, -a.recalcWindow)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			if err := a.ReclassifyRange(ctx, emp.ID, start, end); err != nil {
				// Per-employee failures must not abort the batch.
				if errors.Is(err, context.Canceled) {
					return err
				}
				slog.Error("Failed to reclassify employee range",
					"employee_id", emp.ID, "error", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if a.hub != nil && len(employees) > 0 {
		ids := make([]string, 0, len(employees))
		for _, emp := range employees {
			ids = append(ids, emp.ID)
		}
		a.hub.PublishToMany(ids, sse.Event{
			Event: "attendance.changed",
			Data: map[string]interface{}{
				"schedule_id": scheduleID,
			},
		})
	}

	return nil
}
