package schedule

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Name               string   `json:"name"`
	DepartmentID       *string  `json:"department_id,omitempty"`
	StartTime          string   `json:"start_time"` // "15:04"
	EndTime            string   `json:"end_time"`
	WorkingDays        []string `json:"working_days"` // "monday".."sunday"
	GracePeriodMinutes int      `json:"grace_period_minutes"`
	IsFlexible         bool     `json:"is_flexible"`
	TotalWorkHours     float64  `json:"total_work_hours"`
}

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !r.IsFlexible {
		if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be HH:MM",
			})
		}
		if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be HH:MM",
			})
		}
	} else if r.TotalWorkHours <= 0 || r.TotalWorkHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_work_hours",
			Message: "total_work_hours must be between 0 and 24 for flexible schedules",
		})
	}

	for _, day := range r.WorkingDays {
		if !validator.IsInSlice(day, weekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "unknown weekday: " + day,
			})
		}
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ID                 string    `json:"-"`
	Name               *string   `json:"name,omitempty"`
	DepartmentID       *string   `json:"department_id,omitempty"`
	StartTime          *string   `json:"start_time,omitempty"`
	EndTime            *string   `json:"end_time,omitempty"`
	WorkingDays        *[]string `json:"working_days,omitempty"`
	GracePeriodMinutes *int      `json:"grace_period_minutes,omitempty"`
	IsFlexible         *bool     `json:"is_flexible,omitempty"`
	TotalWorkHours     *float64  `json:"total_work_hours,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidClockTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be HH:MM",
			})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidClockTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be HH:MM",
			})
		}
	}

	if r.WorkingDays != nil {
		for _, day := range *r.WorkingDays {
			if !validator.IsInSlice(day, weekdayNames) {
				errs = append(errs, validator.ValidationError{
					Field:   "working_days",
					Message: "unknown weekday: " + day,
				})
			}
		}
	}

	if r.GracePeriodMinutes != nil && *r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	DepartmentID       *string  `json:"department_id,omitempty"`
	StartTime          string   `json:"start_time,omitempty"`
	EndTime            string   `json:"end_time,omitempty"`
	WorkingDays        []string `json:"working_days"`
	GracePeriodMinutes int      `json:"grace_period_minutes"`
	IsFlexible         bool     `json:"is_flexible"`
	TotalWorkHours     float64  `json:"total_work_hours,omitempty"`
}

// WorkingDayNames lists the schedule's working days in week order.
func (s WorkSchedule) WorkingDayNames() []string {
	flags := []bool{s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday}
	days := make([]string, 0, 7)
	for i, set := range flags {
		if set {
			days = append(days, weekdayNames[i])
		}
	}
	return days
}

// SetWorkingDays replaces the weekday flags from a list of lowercase names.
func (s *WorkSchedule) SetWorkingDays(days []string) {
	s.Monday = false
	s.Tuesday = false
	s.Wednesday = false
	s.Thursday = false
	s.Friday = false
	s.Saturday = false
	s.Sunday = false
	for _, day := range days {
		switch day {
		case "monday":
			s.Monday = true
		case "tuesday":
			s.Tuesday = true
		case "wednesday":
			s.Wednesday = true
		case "thursday":
			s.Thursday = true
		case "friday":
			s.Friday = true
		case "saturday":
			s.Saturday = true
		case "sunday":
			s.Sunday = true
		}
	}
}
