package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	// Timestamp overrides the server clock, mainly for corrections and
	// imports. RFC3339; empty means "now".
	Timestamp string  `json:"timestamp,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Timestamp string  `json:"timestamp,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be RFC3339",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be RFC3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                    string   `json:"id"`
	EmployeeID            string   `json:"employee_id"`
	EmployeeName          string   `json:"employee_name,omitempty"`
	Date                  string   `json:"date"`
	CheckInTime           *string  `json:"check_in_time,omitempty"`
	CheckOutTime          *string  `json:"check_out_time,omitempty"`
	WorkingHours          *float64 `json:"working_hours,omitempty"`
	IsComplete            bool     `json:"is_complete"`
	Status                string   `json:"status"`
	IsLate                bool     `json:"is_late"`
	LateMinutes           *int     `json:"late_minutes,omitempty"`
	IsEarlyArrival        bool     `json:"is_early_arrival"`
	EarlyArrivalMinutes   *int     `json:"early_arrival_minutes,omitempty"`
	IsEarlyDeparture      bool     `json:"is_early_departure"`
	EarlyDepartureMinutes *int     `json:"early_departure_minutes,omitempty"`
	IsOvertime            bool     `json:"is_overtime"`
	OvertimeMinutes       *int     `json:"overtime_minutes,omitempty"`
	WasFlexible           bool     `json:"was_flexible"`
	ExpectedHours         float64  `json:"expected_hours,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// MapRecordToResponse converts a Record entity to RecordResponse
func MapRecordToResponse(rec Record) RecordResponse {
	var employeeName string
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	var workingHours *float64
	if rec.WorkMinutes != nil {
		hours := float64(*rec.WorkMinutes) / 60.0
		workingHours = &hours
	}

	return RecordResponse{
		ID:                    rec.ID,
		EmployeeID:            rec.EmployeeID,
		EmployeeName:          employeeName,
		Date:                  rec.Date.Format("2006-01-02"),
		CheckInTime:           timePtrToString(rec.CheckIn),
		CheckOutTime:          timePtrToString(rec.CheckOut),
		WorkingHours:          workingHours,
		IsComplete:            rec.IsComplete,
		Status:                string(rec.Status),
		IsLate:                rec.IsLate,
		LateMinutes:           rec.LateMinutes,
		IsEarlyArrival:        rec.IsEarlyArrival,
		EarlyArrivalMinutes:   rec.EarlyArrivalMinutes,
		IsEarlyDeparture:      rec.IsEarlyDeparture,
		EarlyDepartureMinutes: rec.EarlyDepartureMinutes,
		IsOvertime:            rec.IsOvertime,
		OvertimeMinutes:       rec.OvertimeMinutes,
		WasFlexible:           rec.WasFlexible,
		ExpectedHours:         rec.ExpectedHours,
		Notes:                 rec.Notes,
	}
}
