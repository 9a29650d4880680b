package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.work_minutes, a.is_complete, a.status,
	a.is_late, a.late_minutes, a.is_early_arrival, a.early_arrival_minutes,
	a.is_early_departure, a.early_departure_minutes, a.is_overtime, a.overtime_minutes,
	a.was_flexible, a.expected_hours, a.notes, a.created_at, a.updated_at, e.full_name
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.WorkMinutes, &rec.IsComplete, &rec.Status,
		&rec.IsLate, &rec.LateMinutes, &rec.IsEarlyArrival, &rec.EarlyArrivalMinutes,
		&rec.IsEarlyDeparture, &rec.EarlyDepartureMinutes, &rec.IsOvertime, &rec.OvertimeMinutes,
		&rec.WasFlexible, &rec.ExpectedHours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record with id %s: %w", id, err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record for employee %s on %s: %w",
			employeeID, date.Format("2006-01-02"), err)
	}

	return &rec, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) collapses concurrent punches to one row.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out,
			work_minutes, is_complete, status,
			is_late, late_minutes, is_early_arrival, early_arrival_minutes,
			is_early_departure, early_departure_minutes, is_overtime, overtime_minutes,
			was_flexible, expected_hours, notes
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			work_minutes = EXCLUDED.work_minutes,
			is_complete = EXCLUDED.is_complete,
			status = EXCLUDED.status,
			is_late = EXCLUDED.is_late,
			late_minutes = EXCLUDED.late_minutes,
			is_early_arrival = EXCLUDED.is_early_arrival,
			early_arrival_minutes = EXCLUDED.early_arrival_minutes,
			is_early_departure = EXCLUDED.is_early_departure,
			early_departure_minutes = EXCLUDED.early_departure_minutes,
			is_overtime = EXCLUDED.is_overtime,
			overtime_minutes = EXCLUDED.overtime_minutes,
			was_flexible = EXCLUDED.was_flexible,
			expected_hours = EXCLUDED.expected_hours,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date.Format("2006-01-02"), rec.CheckIn, rec.CheckOut,
		rec.WorkMinutes, rec.IsComplete, rec.Status,
		rec.IsLate, rec.LateMinutes, rec.IsEarlyArrival, rec.EarlyArrivalMinutes,
		rec.IsEarlyDeparture, rec.EarlyDepartureMinutes, rec.IsOvertime, rec.OvertimeMinutes,
		rec.WasFlexible, rec.ExpectedHours, rec.Notes,
	).Scan(&id)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return a.GetByID(ctx, id)
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1, check_out = $2,
			work_minutes = $3, is_complete = $4, status = $5,
			is_late = $6, late_minutes = $7,
			is_early_arrival = $8, early_arrival_minutes = $9,
			is_early_departure = $10, early_departure_minutes = $11,
			is_overtime = $12, overtime_minutes = $13,
			was_flexible = $14, expected_hours = $15, notes = $16,
			updated_at = NOW()
		WHERE id = $17
	`

	tag, err := q.Exec(ctx, query,
		rec.CheckIn, rec.CheckOut,
		rec.WorkMinutes, rec.IsComplete, rec.Status,
		rec.IsLate, rec.LateMinutes,
		rec.IsEarlyArrival, rec.EarlyArrivalMinutes,
		rec.IsEarlyDeparture, rec.EarlyDepartureMinutes,
		rec.IsOvertime, rec.OvertimeMinutes,
		rec.WasFlexible, rec.ExpectedHours, rec.Notes,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record with id %s: %w", rec.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
