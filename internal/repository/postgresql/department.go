package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/master/department"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department with id %s: %w", id, err)
	}

	return dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, dept.ID, dept.Name).Scan(
		&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}
