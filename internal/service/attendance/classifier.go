package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
)

// ArrivalKind tags how a check-in relates to the scheduled start.
// Late and early arrival are one variant slot, so they can never both be
// set on the same day.
type ArrivalKind int

const (
	ArrivalOnTime ArrivalKind = iota
	ArrivalEarly
	ArrivalLate
)

type Arrival struct {
	Kind    ArrivalKind
	Minutes int
}

// DepartureKind tags how a check-out relates to the scheduled end.
type DepartureKind int

const (
	DepartureOnTime DepartureKind = iota
	DepartureEarly
	DepartureOvertime
)

type Departure struct {
	Kind    DepartureKind
	Minutes int
}

// Classification holds every derived field for one employee-day.
type Classification struct {
	Status        attendance.DayStatus
	IsComplete    bool
	WorkMinutes   *int
	Arrival       Arrival
	Departure     Departure
	WasFlexible   bool
	ExpectedHours float64
}

// Classify derives the attendance classification for a record against a
// schedule on a calendar day. Pure: no clock reads, no side effects, so
// re-running it on the same inputs always yields the same result.
//
// A nil schedule means the day cannot be measured: only completeness is
// derived and no deviation is reported.
func Classify(rec attendance.Record, sched *schedule.WorkSchedule, date time.Time) Classification {
	c := Classification{Status: attendance.StatusIncomplete}

	c.IsComplete = rec.CheckIn != nil && rec.CheckOut != nil
	if c.IsComplete {
		mins := int(rec.CheckOut.Sub(*rec.CheckIn).Minutes())
		c.WorkMinutes = &mins
	}

	if sched == nil {
		if c.IsComplete {
			c.Status = attendance.StatusPresent
		}
		return c
	}

	c.ExpectedHours = sched.ExpectedHours()

	if sched.IsFlexible {
		c.WasFlexible = true
		return classifyFlexible(c)
	}

	// A non-working weekday never yields deviations, whatever the
	// timestamps say.
	if !sched.IsWorkingDay(date.Weekday()) {
		if c.IsComplete {
			c.Status = attendance.StatusPresent
		}
		return c
	}

	return classifyFixed(c, rec, sched, date)
}

// classifyFlexible evaluates total hours only. Lateness and early
// departure do not exist for flexible schedules; the reachable statuses
// are incomplete, half day, overtime and present.
func classifyFlexible(c Classification) Classification {
	if !c.IsComplete {
		return c
	}

	expectedMinutes := int(c.ExpectedHours * 60)
	actualMinutes := *c.WorkMinutes

	if expectedMinutes > 0 {
		percentage := float64(actualMinutes) / float64(expectedMinutes) * 100

		if percentage >= 40 && percentage < 90 {
			c.Status = attendance.StatusHalfDay
			return c
		}
	}

	if actualMinutes > expectedMinutes {
		c.Departure = Departure{Kind: DepartureOvertime, Minutes: actualMinutes - expectedMinutes}
		c.Status = attendance.StatusOvertime
		return c
	}

	// Worked time below 40% of expected lands here and reads as present.
	// Matches the historical behavior; flagged for review in DESIGN.md.
	c.Status = attendance.StatusPresent
	return c
}

func classifyFixed(c Classification, rec attendance.Record, sched *schedule.WorkSchedule, date time.Time) Classification {
	expectedStart := sched.StartOn(date)
	expectedEnd := sched.EndOn(date)
	grace := time.Duration(sched.GracePeriodMinutes) * time.Minute

	if rec.CheckIn != nil {
		in := *rec.CheckIn
		switch {
		case in.After(expectedStart.Add(grace)):
			// Grace forgives the label only; the minutes count from the
			// scheduled start, not from the grace boundary.
			c.Arrival = Arrival{Kind: ArrivalLate, Minutes: int(in.Sub(expectedStart).Minutes())}
		case in.Before(expectedStart):
			c.Arrival = Arrival{Kind: ArrivalEarly, Minutes: int(expectedStart.Sub(in).Minutes())}
		}
	}

	if rec.CheckOut != nil {
		out := *rec.CheckOut
		switch {
		case out.Before(expectedEnd.Add(-grace)):
			c.Departure = Departure{Kind: DepartureEarly, Minutes: int(expectedEnd.Sub(out).Minutes())}
		case out.After(expectedEnd):
			// Overtime has no grace.
			c.Departure = Departure{Kind: DepartureOvertime, Minutes: int(out.Sub(expectedEnd).Minutes())}
		}
	}

	if !c.IsComplete {
		return c
	}

	late := c.Arrival.Kind == ArrivalLate
	leftEarly := c.Departure.Kind == DepartureEarly

	switch {
	case late && leftEarly:
		c.Status = attendance.StatusLateAndLeftEarly
	case late:
		c.Status = halfDayOr(c, attendance.StatusLateArrival)
	case leftEarly:
		c.Status = halfDayOr(c, attendance.StatusEarlyDeparture)
	case c.Arrival.Kind == ArrivalEarly:
		c.Status = attendance.StatusEarlyArrival
	case c.Departure.Kind == DepartureOvertime:
		c.Status = attendance.StatusOvertime
	default:
		c.Status = attendance.StatusPresent
	}

	return c
}

// halfDayOr overrides a lateness/early-departure label with half day when
// the worked duration is at most half the expected hours.
func halfDayOr(c Classification, status attendance.DayStatus) attendance.DayStatus {
	if c.WorkMinutes != nil && c.ExpectedHours > 0 &&
		float64(*c.WorkMinutes) <= c.ExpectedHours*60/2 {
		return attendance.StatusHalfDay
	}
	return status
}

// ApplyTo writes the derived fields back onto a record.
func (c Classification) ApplyTo(rec *attendance.Record) {
	rec.Status = c.Status
	rec.IsComplete = c.IsComplete
	rec.WorkMinutes = c.WorkMinutes
	rec.WasFlexible = c.WasFlexible
	rec.ExpectedHours = c.ExpectedHours

	rec.IsLate = false
	rec.LateMinutes = nil
	rec.IsEarlyArrival = false
	rec.EarlyArrivalMinutes = nil
	rec.IsEarlyDeparture = false
	rec.EarlyDepartureMinutes = nil
	rec.IsOvertime = false
	rec.OvertimeMinutes = nil

	switch c.Arrival.Kind {
	case ArrivalLate:
		mins := c.Arrival.Minutes
		rec.IsLate = true
		rec.LateMinutes = &mins
	case ArrivalEarly:
		mins := c.Arrival.Minutes
		rec.IsEarlyArrival = true
		rec.EarlyArrivalMinutes = &mins
	}

	switch c.Departure.Kind {
	case DepartureEarly:
		mins := c.Departure.Minutes
		rec.IsEarlyDeparture = true
		rec.EarlyDepartureMinutes = &mins
	case DepartureOvertime:
		mins := c.Departure.Minutes
		rec.IsOvertime = true
		rec.OvertimeMinutes = &mins
	}
}
