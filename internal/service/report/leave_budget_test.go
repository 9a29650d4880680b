package report

import (
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveBudgetOrderedFold(t *testing.T) {
	b := NewLeaveBudget(2)

	// Three unaccounted days in order: the first two are excused.
	assert.Equal(t, attendance.StatusLeave, b.Advance(day(2024, time.March, 4)))
	assert.Equal(t, attendance.StatusLeave, b.Advance(day(2024, time.March, 11)))
	assert.Equal(t, attendance.StatusAbsent, b.Advance(day(2024, time.March, 18)))
	assert.Equal(t, 0, b.Remaining())
}

func TestLeaveBudgetResetsEachMonth(t *testing.T) {
	b := NewLeaveBudget(1)

	assert.Equal(t, attendance.StatusLeave, b.Advance(day(2024, time.March, 28)))
	assert.Equal(t, attendance.StatusAbsent, b.Advance(day(2024, time.March, 29)))

	// April starts a fresh allowance.
	assert.Equal(t, attendance.StatusLeave, b.Advance(day(2024, time.April, 1)))
	assert.Equal(t, attendance.StatusAbsent, b.Advance(day(2024, time.April, 2)))
}

func TestLeaveBudgetZeroAllowance(t *testing.T) {
	b := NewLeaveBudget(0)
	assert.Equal(t, attendance.StatusAbsent, b.Advance(day(2024, time.March, 4)))
}

func TestLeaveBudgetMinOfDaysAndAllowance(t *testing.T) {
	for _, tc := range []struct {
		days, allowance int
	}{
		{0, 3}, {2, 3}, {3, 3}, {5, 3}, {10, 0},
	} {
		b := NewLeaveBudget(tc.allowance)
		leave, absent := 0, 0
		for i := 0; i < tc.days; i++ {
			switch b.Advance(day(2024, time.May, i+1)) {
			case attendance.StatusLeave:
				leave++
			case attendance.StatusAbsent:
				absent++
			}
		}

		wantLeave := min(tc.days, tc.allowance)
		assert.Equal(t, wantLeave, leave, "days=%d allowance=%d", tc.days, tc.allowance)
		assert.Equal(t, tc.days-wantLeave, absent, "days=%d allowance=%d", tc.days, tc.allowance)
	}
}
