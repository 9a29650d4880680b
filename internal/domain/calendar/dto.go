package calendar

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	Date        string  `json:"date"` // "2006-01-02"
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	EntryType   string  `json:"entry_type"`
	IsRecurring bool    `json:"is_recurring"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.EntryType, EntryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_type",
			Message: "entry_type must be one of holiday, non_working_day, short_day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	EntryType   string  `json:"entry_type"`
	IsRecurring bool    `json:"is_recurring"`
}
