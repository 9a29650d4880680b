package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
	updated []attendance.Record
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Record) error {
	f.updated = append(f.updated, rec)
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeEmployeeRepo struct {
	byScheduleID map[string][]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListByDepartmentID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByScheduleID(_ context.Context, scheduleID string) ([]employee.Employee, error) {
	return f.byScheduleID[scheduleID], nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

type fakeResolver struct {
	ws *schedule.WorkSchedule
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (*schedule.WorkSchedule, error) {
	return f.ws, nil
}

func TestReclassifyRangeRejectsInvertedRange(t *testing.T) {
	svc := &AttendanceServiceImpl{
		attendanceRepo: &fakeAttendanceRepo{},
		employeeRepo:   &fakeEmployeeRepo{},
		resolver:       &fakeResolver{},
	}

	err := svc.ReclassifyRange(context.Background(), "emp-1", monday, monday.AddDate(0, 0, -7))
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestReclassifyRangeUpdatesRecords(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Record{
		{
			ID:         "rec-1",
			EmployeeID: "emp-1",
			Date:       monday,
			CheckIn:    at(9, 20),
			CheckOut:   at(17, 0),
			Status:     attendance.StatusPresent,
		},
	}}
	svc := &AttendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo:   &fakeEmployeeRepo{},
		resolver:       &fakeResolver{ws: fixedSchedule(15)},
	}

	err := svc.ReclassifyRange(context.Background(), "emp-1", monday, monday)
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	rec := repo.updated[0]
	assert.Equal(t, attendance.StatusLateArrival, rec.Status)
	assert.True(t, rec.IsLate)
	require.NotNil(t, rec.LateMinutes)
	assert.Equal(t, 20, *rec.LateMinutes)
}

func TestReclassifyForScheduleNotifiesAffectedEmployees(t *testing.T) {
	hub := sse.NewHub()
	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	svc := &AttendanceServiceImpl{
		attendanceRepo: &fakeAttendanceRepo{},
		employeeRepo: &fakeEmployeeRepo{byScheduleID: map[string][]employee.Employee{
			"ws-1": {{ID: "emp-1"}, {ID: "emp-2"}},
		}},
		resolver:     &fakeResolver{ws: fixedSchedule(15)},
		hub:          hub,
		recalcWindow: 7,
	}

	err := svc.ReclassifyForSchedule(context.Background(), "ws-1")
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, "attendance.changed", ev.Event)
		assert.Equal(t, "emp-1", ev.EmployeeID)
	default:
		t.Fatal("expected a change event for an affected employee")
	}
}
