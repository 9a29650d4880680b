package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntryRepo struct {
	entries []calendar.CalendarEntry
}

func (f *fakeEntryRepo) GetByDate(_ context.Context, date time.Time) (*calendar.CalendarEntry, error) {
	for _, entry := range f.entries {
		if entry.Matches(date) {
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, id string) (calendar.CalendarEntry, error) {
	for _, entry := range f.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return calendar.CalendarEntry{}, calendar.ErrCalendarEntryNotFound
}

func (f *fakeEntryRepo) List(_ context.Context) ([]calendar.CalendarEntry, error) {
	return f.entries, nil
}

func (f *fakeEntryRepo) Create(_ context.Context, entry calendar.CalendarEntry) (calendar.CalendarEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id string) error {
	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return calendar.ErrCalendarEntryNotFound
}

type fakeResolver struct {
	schedules map[string]*schedule.WorkSchedule
}

func (f *fakeResolver) Resolve(_ context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	return f.schedules[employeeID], nil
}

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDate(t *testing.T) {
	repo := &fakeEntryRepo{entries: []calendar.CalendarEntry{
		{ID: "1", Date: date(2024, time.March, 8), Name: "Founders Day", EntryType: calendar.EntryTypeHoliday},
		{ID: "2", Date: date(2024, time.March, 9), Name: "Inventory", EntryType: calendar.EntryTypeNonWorkingDay},
		{ID: "3", Date: date(2024, time.March, 29), Name: "Half Friday", EntryType: calendar.EntryTypeShortDay},
		{ID: "4", Date: date(2020, time.December, 25), Name: "Christmas", EntryType: calendar.EntryTypeHoliday, IsRecurring: true},
	}}
	svc := NewCalendarService(repo, &fakeResolver{})
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		day  time.Time
		want bool
	}{
		{"holiday entry", date(2024, time.March, 8), false},
		{"non-working entry", date(2024, time.March, 9), false},
		{"short day stays working", date(2024, time.March, 29), true},
		{"recurring holiday in a later year", date(2024, time.December, 25), false},
		{"plain weekday", date(2024, time.March, 5), true},
		{"saturday default", date(2024, time.March, 16), false},
		{"sunday default", date(2024, time.March, 17), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.IsWorkingDate(ctx, tc.day)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsWorkingDateForEmployee(t *testing.T) {
	weekdays := &schedule.WorkSchedule{
		ID: "ws-1", Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
	}
	mondaysOnly := &schedule.WorkSchedule{ID: "ws-2", Monday: true}

	svc := NewCalendarService(&fakeEntryRepo{}, &fakeResolver{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": weekdays,
		"emp-2": mondaysOnly,
	}})
	ctx := context.Background()
	tuesday := date(2024, time.March, 5)

	got, err := svc.IsWorkingDateForEmployee(ctx, "emp-1", tuesday)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = svc.IsWorkingDateForEmployee(ctx, "emp-2", tuesday)
	require.NoError(t, err)
	assert.False(t, got)

	// No resolvable schedule means the day cannot be a working day.
	got, err = svc.IsWorkingDateForEmployee(ctx, "emp-none", tuesday)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCreateEntryValidation(t *testing.T) {
	svc := NewCalendarService(&fakeEntryRepo{}, &fakeResolver{})
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, calendar.CreateEntryRequest{
		Date:      "not-a-date",
		Name:      "Bad",
		EntryType: "holiday",
	})
	assert.Error(t, err)

	_, err = svc.CreateEntry(ctx, calendar.CreateEntryRequest{
		Date:      "2024-03-08",
		Name:      "Founders Day",
		EntryType: "vacation",
	})
	assert.Error(t, err)

	created, err := svc.CreateEntry(ctx, calendar.CreateEntryRequest{
		Date:      "2024-03-08",
		Name:      "Founders Day",
		EntryType: "holiday",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-03-08", created.Date)
}

func TestDeleteEntry(t *testing.T) {
	repo := &fakeEntryRepo{entries: []calendar.CalendarEntry{
		{ID: "1", Date: date(2024, time.March, 8), Name: "Founders Day", EntryType: calendar.EntryTypeHoliday},
	}}
	svc := NewCalendarService(repo, &fakeResolver{})
	ctx := context.Background()

	require.NoError(t, svc.DeleteEntry(ctx, "1"))
	assert.Error(t, svc.DeleteEntry(ctx, "1"))
}
