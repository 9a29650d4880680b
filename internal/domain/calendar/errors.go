package calendar

import "errors"

var (
	ErrCalendarEntryNotFound = errors.New("calendar entry not found")
)
