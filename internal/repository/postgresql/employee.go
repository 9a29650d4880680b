package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.email, e.password_hash, e.role,
	e.department_id, e.work_schedule_id, e.hire_date,
	e.leave_days_per_month, e.flexible_hours, e.required_hours_per_day,
	e.created_at, e.updated_at, d.name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.PasswordHash, &emp.Role,
		&emp.DepartmentID, &emp.WorkScheduleID, &emp.HireDate,
		&emp.LeaveDaysPerMonth, &emp.FlexibleHours, &emp.RequiredHoursPerDay,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.email = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.full_name, e.id
	`
	return e.queryMany(ctx, query)
}

// ListByDepartmentID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByDepartmentID(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.department_id = $1
		ORDER BY e.full_name, e.id
	`
	return e.queryMany(ctx, query, departmentID)
}

// ListByScheduleID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByScheduleID(ctx context.Context, scheduleID string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.work_schedule_id = $1
		   OR (e.work_schedule_id IS NULL AND e.department_id IN (
				SELECT department_id FROM work_schedules
				WHERE id = $1 AND department_id IS NOT NULL
		   ))
		ORDER BY e.full_name, e.id
	`
	return e.queryMany(ctx, query, scheduleID)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, full_name, email, password_hash, role,
			department_id, work_schedule_id, hire_date,
			leave_days_per_month, flexible_hours, required_hours_per_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, full_name, email, password_hash, role,
			department_id, work_schedule_id, hire_date,
			leave_days_per_month, flexible_hours, required_hours_per_day,
			created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.PasswordHash, emp.Role,
		emp.DepartmentID, emp.WorkScheduleID, emp.HireDate,
		emp.LeaveDaysPerMonth, emp.FlexibleHours, emp.RequiredHoursPerDay,
	).Scan(
		&created.ID, &created.FullName, &created.Email, &created.PasswordHash, &created.Role,
		&created.DepartmentID, &created.WorkScheduleID,
		&created.HireDate, &created.LeaveDaysPerMonth, &created.FlexibleHours,
		&created.RequiredHoursPerDay, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (e *employeeRepositoryImpl) queryMany(ctx context.Context, query string, args ...any) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
