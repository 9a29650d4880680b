package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/master/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/report"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in yet", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Schedule and calendar domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, calendar.ErrCalendarEntryNotFound):
		NotFound(w, "Calendar entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
