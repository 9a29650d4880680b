package report

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
)

// LeaveBudget is the monthly leave accumulator threaded through the
// day-by-day report loop. It must be advanced in chronological order:
// the first unaccounted working days of a month are excused as leave
// until the allowance runs out, the rest are absences. Re-ordering days
// changes which days are leave, not how many.
type LeaveBudget struct {
	allowance int
	remaining int
	year      int
	month     time.Month
	started   bool
}

func NewLeaveBudget(allowancePerMonth int) *LeaveBudget {
	return &LeaveBudget{allowance: allowancePerMonth}
}

// Advance consumes one unaccounted working day and returns its label.
// The budget resets on the first day of each month it sees.
func (b *LeaveBudget) Advance(date time.Time) attendance.DayStatus {
	if !b.started || date.Year() != b.year || date.Month() != b.month {
		b.year = date.Year()
		b.month = date.Month()
		b.remaining = b.allowance
		b.started = true
	}

	if b.remaining > 0 {
		b.remaining--
		return attendance.StatusLeave
	}

	return attendance.StatusAbsent
}

// Remaining reports the leave days left in the current month.
func (b *LeaveBudget) Remaining() int {
	return b.remaining
}
