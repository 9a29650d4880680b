package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

type WorkScheduleServiceImpl struct {
	db            *database.DB
	scheduleRepo  schedule.WorkScheduleRepository
	attendanceSvc attendance.AttendanceService
}

func NewWorkScheduleService(
	db *database.DB,
	scheduleRepo schedule.WorkScheduleRepository,
	attendanceSvc attendance.AttendanceService,
) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		db:            db,
		scheduleRepo:  scheduleRepo,
		attendanceSvc: attendanceSvc,
	}
}

// GetSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	ws, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return mapToResponse(ws), nil
}

// ListSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapToResponse(ws))
	}
	return responses, nil
}

// CreateSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to generate schedule id: %w", err)
	}

	now := time.Now().UTC()
	ws := schedule.WorkSchedule{
		ID:                 id.String(),
		Name:               req.Name,
		DepartmentID:       req.DepartmentID,
		GracePeriodMinutes: req.GracePeriodMinutes,
		IsFlexible:         req.IsFlexible,
		TotalWorkHours:     req.TotalWorkHours,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	ws.SetWorkingDays(req.WorkingDays)

	if !req.IsFlexible {
		ws.StartTime, _ = validator.IsValidClockTime(req.StartTime)
		ws.EndTime, _ = validator.IsValidClockTime(req.EndTime)
	}

	created, err := s.scheduleRepo.Create(ctx, ws)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return mapToResponse(created), nil
}

// UpdateSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	var ws schedule.WorkSchedule
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		var err error
		ws, err = s.scheduleRepo.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
				return schedule.ErrWorkScheduleNotFound
			}
			return fmt.Errorf("failed to get schedule: %w", err)
		}

		if req.Name != nil {
			ws.Name = *req.Name
		}
		if req.DepartmentID != nil {
			ws.DepartmentID = req.DepartmentID
		}
		if req.StartTime != nil {
			ws.StartTime, _ = validator.IsValidClockTime(*req.StartTime)
		}
		if req.EndTime != nil {
			ws.EndTime, _ = validator.IsValidClockTime(*req.EndTime)
		}
		if req.WorkingDays != nil {
			ws.SetWorkingDays(*req.WorkingDays)
		}
		if req.GracePeriodMinutes != nil {
			ws.GracePeriodMinutes = *req.GracePeriodMinutes
		}
		if req.IsFlexible != nil {
			ws.IsFlexible = *req.IsFlexible
		}
		if req.TotalWorkHours != nil {
			ws.TotalWorkHours = *req.TotalWorkHours
		}
		ws.UpdatedAt = time.Now().UTC()

		if err := s.scheduleRepo.Update(ctx, ws); err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	// Stored classifications derive from the schedule, so an edit makes
	// the recent window stale. Re-run it off the request path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.attendanceSvc.ReclassifyForSchedule(ctx, ws.ID); err != nil {
			slog.Error("failed to reclassify after schedule update",
				slog.String("schedule_id", ws.ID),
				slog.Any("error", err),
			)
		}
	}()

	return mapToResponse(ws), nil
}

func mapToResponse(ws schedule.WorkSchedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ID:                 ws.ID,
		Name:               ws.Name,
		DepartmentID:       ws.DepartmentID,
		WorkingDays:        ws.WorkingDayNames(),
		GracePeriodMinutes: ws.GracePeriodMinutes,
		IsFlexible:         ws.IsFlexible,
		TotalWorkHours:     ws.TotalWorkHours,
	}
	if !ws.IsFlexible {
		resp.StartTime = ws.StartTime.Format("15:04")
		resp.EndTime = ws.EndTime.Format("15:04")
	}
	return resp
}
