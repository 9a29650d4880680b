package employee

import "context"

// EmployeeService manages the employee roster.
type EmployeeService interface {
	// CreateEmployee registers a new employee with login credentials
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves the full roster
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
