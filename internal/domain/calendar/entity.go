package calendar

import "time"

type CalendarEntry struct {
	ID          string
	Date        time.Time
	Name        string
	Description *string
	EntryType   EntryType
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EntryType string

const (
	EntryTypeHoliday       EntryType = "holiday"
	EntryTypeNonWorkingDay EntryType = "non_working_day"
	EntryTypeShortDay      EntryType = "short_day"
)

var EntryTypeValues = []string{
	string(EntryTypeHoliday),
	string(EntryTypeNonWorkingDay),
	string(EntryTypeShortDay),
}

// Matches reports whether the entry applies to the given date.
// Recurring entries match by day and month in any year.
func (e CalendarEntry) Matches(date time.Time) bool {
	if e.IsRecurring {
		return e.Date.Day() == date.Day() && e.Date.Month() == date.Month()
	}
	return e.Date.Year() == date.Year() &&
		e.Date.Month() == date.Month() &&
		e.Date.Day() == date.Day()
}
