package employee

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Role                string  `json:"role"`
	DepartmentID        *string `json:"department_id,omitempty"`
	WorkScheduleID      *string `json:"work_schedule_id,omitempty"`
	HireDate            string  `json:"hire_date"` // "2006-01-02"
	LeaveDaysPerMonth   int     `json:"leave_days_per_month"`
	FlexibleHours       bool    `json:"flexible_hours"`
	RequiredHoursPerDay float64 `json:"required_hours_per_day"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{RoleAdmin, RoleEmployee}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, employee",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be YYYY-MM-DD",
		})
	}

	if r.LeaveDaysPerMonth < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_days_per_month",
			Message: "leave_days_per_month must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Role                string  `json:"role"`
	DepartmentID        *string `json:"department_id,omitempty"`
	DepartmentName      *string `json:"department_name,omitempty"`
	WorkScheduleID      *string `json:"work_schedule_id,omitempty"`
	HireDate            string  `json:"hire_date"`
	LeaveDaysPerMonth   int     `json:"leave_days_per_month"`
	FlexibleHours       bool    `json:"flexible_hours"`
	RequiredHoursPerDay float64 `json:"required_hours_per_day"`
}

func MapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  emp.ID,
		FullName:            emp.FullName,
		Email:               emp.Email,
		Role:                emp.Role,
		DepartmentID:        emp.DepartmentID,
		DepartmentName:      emp.DepartmentName,
		WorkScheduleID:      emp.WorkScheduleID,
		HireDate:            emp.HireDate.Format("2006-01-02"),
		LeaveDaysPerMonth:   emp.LeaveDaysPerMonth,
		FlexibleHours:       emp.FlexibleHours,
		RequiredHoursPerDay: emp.RequiredHoursPerDay,
	}
}
