package attendance

import (
	"time"
)

type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time

	// Derived on classification
	WorkMinutes           *int
	IsComplete            bool
	Status                DayStatus
	IsLate                bool
	LateMinutes           *int
	IsEarlyArrival        bool
	EarlyArrivalMinutes   *int
	IsEarlyDeparture      bool
	EarlyDepartureMinutes *int
	IsOvertime            bool
	OvertimeMinutes       *int
	WasFlexible           bool
	ExpectedHours         float64

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// DayStatus is the final classification label for one employee-day.
type DayStatus string

const (
	StatusPresent          DayStatus = "present"
	StatusAbsent           DayStatus = "absent"
	StatusLateArrival      DayStatus = "late_arrival"
	StatusEarlyArrival     DayStatus = "early_arrival"
	StatusEarlyDeparture   DayStatus = "early_departure"
	StatusLateAndLeftEarly DayStatus = "late_and_left_early"
	StatusOvertime         DayStatus = "overtime"
	StatusHalfDay          DayStatus = "half_day"
	StatusHoliday          DayStatus = "holiday"
	StatusDayOff           DayStatus = "day_off"
	StatusLeave            DayStatus = "leave"
	StatusScheduled        DayStatus = "scheduled"
	StatusIncomplete       DayStatus = "incomplete"
)
