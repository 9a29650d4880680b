package schedule

import "time"

type WorkSchedule struct {
	ID           string
	Name         string
	DepartmentID *string

	// Clock-of-day values; the date component is ignored.
	// Meaningless when IsFlexible is set.
	StartTime time.Time
	EndTime   time.Time

	// Seven independent working-day flags.
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	GracePeriodMinutes int
	IsFlexible         bool
	TotalWorkHours     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay reports whether the schedule marks the given weekday as working.
func (s WorkSchedule) IsWorkingDay(d time.Weekday) bool {
	switch d {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	}
	return false
}

// ExpectedHours returns the expected daily work hours. Flexible schedules
// carry the total directly; fixed schedules derive it from the clock span.
func (s WorkSchedule) ExpectedHours() float64 {
	if s.IsFlexible {
		return s.TotalWorkHours
	}
	return s.spanOn(time.Time{}).Hours()
}

// StartOn anchors the schedule start clock on the given calendar day.
func (s WorkSchedule) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, date.Location())
}

// EndOn anchors the schedule end clock on the given calendar day.
func (s WorkSchedule) EndOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, date.Location())
}

func (s WorkSchedule) spanOn(date time.Time) time.Duration {
	return s.EndOn(date).Sub(s.StartOn(date))
}
