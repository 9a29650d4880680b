package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by login email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// ListByDepartmentID retrieves all employees attached to a department
	ListByDepartmentID(ctx context.Context, departmentID string) ([]Employee, error)

	// ListByScheduleID retrieves employees either directly assigned a schedule
	// or belonging to a department the schedule is attached to
	ListByScheduleID(ctx context.Context, scheduleID string) ([]Employee, error)

	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)
}
