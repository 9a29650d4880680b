package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/ingest"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/sse"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
)

type IngestServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	resolver       schedule.ScheduleResolver
	hub            *sse.Hub
}

func NewIngestService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver schedule.ScheduleResolver,
	hub *sse.Hub,
) ingest.IngestService {
	return &IngestServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		resolver:       resolver,
		hub:            hub,
	}
}

// Ingest implements ingest.IngestService. Rows apply independently and
// in order; a bad row never aborts the batch, cancellation does.
func (s *IngestServiceImpl) Ingest(ctx context.Context, req ingest.IngestRequest) (ingest.IngestResult, error) {
	if err := req.Validate(); err != nil {
		return ingest.IngestResult{}, err
	}

	var result ingest.IngestResult
	for i, row := range req.Rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.applyRow(ctx, row); err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, ingest.RowError{
				Index:  i,
				Reason: err.Error(),
			})
			slog.Warn("punch row rejected",
				slog.String("device_id", req.DeviceID),
				slog.Int("row", i),
				slog.Any("error", err),
			)
			continue
		}
		result.Accepted++
	}

	slog.Info("punch batch ingested",
		slog.String("device_id", req.DeviceID),
		slog.Int("accepted", result.Accepted),
		slog.Int("rejected", result.Rejected),
	)

	return result, nil
}

func (s *IngestServiceImpl) applyRow(ctx context.Context, row ingest.PunchRow) error {
	if validator.IsEmpty(row.EmployeeID) {
		return errors.New("employee_id is required")
	}
	date, ok := validator.IsValidDate(row.Date)
	if !ok {
		return errors.New("date must be YYYY-MM-DD")
	}
	checkIn, err := parseStamp(row.CheckIn)
	if err != nil {
		return fmt.Errorf("check_in: %w", err)
	}
	checkOut, err := parseStamp(row.CheckOut)
	if err != nil {
		return fmt.Errorf("check_out: %w", err)
	}
	if checkIn == nil && checkOut == nil {
		return errors.New("row carries no punch")
	}

	if _, err := s.employeeRepo.GetByID(ctx, row.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return errors.New("unknown employee")
		}
		return fmt.Errorf("failed to load employee: %w", err)
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, row.EmployeeID, date)
	if err != nil {
		return fmt.Errorf("failed to look up record: %w", err)
	}

	rec := attendance.Record{
		EmployeeID: row.EmployeeID,
		Date:       date,
	}
	if existing != nil {
		rec = *existing
	} else {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate record id: %w", err)
		}
		rec.ID = id.String()
	}

	// Merge keeps the widest span: earliest check-in, latest check-out.
	if checkIn != nil && (rec.CheckIn == nil || checkIn.Before(*rec.CheckIn)) {
		rec.CheckIn = checkIn
	}
	if checkOut != nil && (rec.CheckOut == nil || checkOut.After(*rec.CheckOut)) {
		rec.CheckOut = checkOut
	}

	sched, err := s.resolver.Resolve(ctx, row.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}

	attendanceService.Classify(rec, sched, date).ApplyTo(&rec)

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(saved.EmployeeID, sse.Event{
			EmployeeID: saved.EmployeeID,
			Event:      "attendance.changed",
			Data: map[string]interface{}{
				"record_id": saved.ID,
				"date":      saved.Date.Format("2006-01-02"),
				"status":    string(saved.Status),
			},
		})
	}

	return nil
}

func parseStamp(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, errors.New("must be RFC3339")
	}
	utc := t.UTC()
	return &utc, nil
}
