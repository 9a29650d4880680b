package employee

import "time"

type Employee struct {
	ID                  string
	FullName            string
	Email               string
	PasswordHash        string
	Role                string
	DepartmentID        *string
	WorkScheduleID      *string
	HireDate            time.Time
	LeaveDaysPerMonth   int
	FlexibleHours       bool
	RequiredHoursPerDay float64
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO
	DepartmentName *string
}

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)
