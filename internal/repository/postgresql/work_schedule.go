package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

const workScheduleColumns = `
	id, name, department_id, start_time, end_time,
	monday, tuesday, wednesday, thursday, friday, saturday, sunday,
	grace_period_minutes, is_flexible, total_work_hours, created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.Name, &ws.DepartmentID, &ws.StartTime, &ws.EndTime,
		&ws.Monday, &ws.Tuesday, &ws.Wednesday, &ws.Thursday, &ws.Friday,
		&ws.Saturday, &ws.Sunday,
		&ws.GracePeriodMinutes, &ws.IsFlexible, &ws.TotalWorkHours,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE id = $1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule with id %s: %w", id, err)
	}

	return ws, nil
}

// GetByDepartmentID implements schedule.WorkScheduleRepository.
// Lowest id wins when a department carries several schedules.
func (w *workScheduleRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE department_id = $1
		ORDER BY id
		LIMIT 1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work schedule for department %s: %w", departmentID, err)
	}

	return &ws, nil
}

// GetAny implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) GetAny(ctx context.Context) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		ORDER BY id
		LIMIT 1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get any work schedule: %w", err)
	}

	return &ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Create implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedules (
			id, name, department_id, start_time, end_time,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			grace_period_minutes, is_flexible, total_work_hours
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15
		)
		RETURNING ` + workScheduleColumns + `
	`

	created, err := scanWorkSchedule(q.QueryRow(ctx, query,
		ws.ID, ws.Name, ws.DepartmentID, ws.StartTime, ws.EndTime,
		ws.Monday, ws.Tuesday, ws.Wednesday, ws.Thursday, ws.Friday,
		ws.Saturday, ws.Sunday,
		ws.GracePeriodMinutes, ws.IsFlexible, ws.TotalWorkHours,
	))
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return created, nil
}

// Update implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) Update(ctx context.Context, ws schedule.WorkSchedule) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_schedules
		SET name = $1, department_id = $2, start_time = $3, end_time = $4,
			monday = $5, tuesday = $6, wednesday = $7, thursday = $8,
			friday = $9, saturday = $10, sunday = $11,
			grace_period_minutes = $12, is_flexible = $13, total_work_hours = $14,
			updated_at = NOW()
		WHERE id = $15
	`

	tag, err := q.Exec(ctx, query,
		ws.Name, ws.DepartmentID, ws.StartTime, ws.EndTime,
		ws.Monday, ws.Tuesday, ws.Wednesday, ws.Thursday,
		ws.Friday, ws.Saturday, ws.Sunday,
		ws.GracePeriodMinutes, ws.IsFlexible, ws.TotalWorkHours,
		ws.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update work schedule with id %s: %w", ws.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}

	return nil
}
