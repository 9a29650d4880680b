package report

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// Item is one classified employee-day in a report. Transient: assembled
// on demand, never persisted.
type Item struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	Date         string               `json:"date"`
	Weekday      string               `json:"weekday"`
	Status       attendance.DayStatus `json:"status"`

	CheckInTime           *string  `json:"check_in_time,omitempty"`
	CheckOutTime          *string  `json:"check_out_time,omitempty"`
	WorkingHours          *float64 `json:"working_hours,omitempty"`
	LateMinutes           *int     `json:"late_minutes,omitempty"`
	EarlyArrivalMinutes   *int     `json:"early_arrival_minutes,omitempty"`
	EarlyDepartureMinutes *int     `json:"early_departure_minutes,omitempty"`
	OvertimeMinutes       *int     `json:"overtime_minutes,omitempty"`

	IsHoliday    bool    `json:"is_holiday"`
	IsNonWorking bool    `json:"is_non_working"`
	HolidayName  *string `json:"holiday_name,omitempty"`
}

// Statistics aggregates one report's items.
type Statistics struct {
	TotalDays      int `json:"total_days"`
	WorkingDays    int `json:"working_days"`
	PresentDays    int `json:"present_days"`
	AbsentDays     int `json:"absent_days"`
	LeaveDays      int `json:"leave_days"`
	LateDays       int `json:"late_days"`
	EarlyLeaveDays int `json:"early_leave_days"`
	OvertimeDays   int `json:"overtime_days"`
	HalfDays       int `json:"half_days"`
	IncompleteDays int `json:"incomplete_days"`
	HolidayDays    int `json:"holiday_days"`
	NonWorkingDays int `json:"non_working_days"`
	ScheduledDays  int `json:"scheduled_days"`

	AttendanceRate float64 `json:"attendance_rate"` // percent of working days attended
	AbsenceRate    float64 `json:"absence_rate"`    // percent of working days absent
}

type Report struct {
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	GeneratedAt string     `json:"generated_at"`
	Items       []Item     `json:"items"`
	Statistics  Statistics `json:"statistics"`
}

type EmployeeReportRequest struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *EmployeeReportRequest) Validate() error {
	return validateRange(r.StartDate, r.EndDate, func(errs *validator.ValidationErrors) {
		if validator.IsEmpty(r.EmployeeID) {
			*errs = append(*errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id is required",
			})
		}
	})
}

type DepartmentReportRequest struct {
	DepartmentID string `json:"-"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (r *DepartmentReportRequest) Validate() error {
	return validateRange(r.StartDate, r.EndDate, func(errs *validator.ValidationErrors) {
		if validator.IsEmpty(r.DepartmentID) {
			*errs = append(*errs, validator.ValidationError{
				Field:   "department_id",
				Message: "department_id is required",
			})
		}
	})
}

type CompanyReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CompanyReportRequest) Validate() error {
	return validateRange(r.StartDate, r.EndDate, nil)
}

func validateRange(startStr, endStr string, extra func(*validator.ValidationErrors)) error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(startStr)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, okEnd := validator.IsValidDate(endStr)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if extra != nil {
		extra(&errs)
	}

	if len(errs) > 0 {
		return errs
	}

	if start.After(end) {
		return ErrInvalidDateRange
	}

	return nil
}

// ParseRange converts the validated date strings. Call Validate first.
func ParseRange(startStr, endStr string) (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", startStr)
	end, _ = time.Parse("2006-01-02", endStr)
	return start, end
}
