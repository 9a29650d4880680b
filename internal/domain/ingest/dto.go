package ingest

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// PunchRow is one pre-parsed device punch. Timestamps are RFC3339; a
// row may carry either stamp or both.
type PunchRow struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

type IngestRequest struct {
	DeviceID string     `json:"device_id"`
	Rows     []PunchRow `json:"rows"`
}

func (r *IngestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}
	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "rows must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RowError reports why a single row was rejected; the batch continues.
type RowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type IngestResult struct {
	Accepted int        `json:"accepted"`
	Rejected int        `json:"rejected"`
	Errors   []RowError `json:"errors,omitempty"`
}
