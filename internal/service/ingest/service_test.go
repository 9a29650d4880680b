package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/ingest"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // keyed by employeeID + date
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if rec, ok := f.records[key(employeeID, date)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[key(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Record) error { return nil }
func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error            { return nil }

type fakeEmployeeRepo struct {
	ids map[string]bool
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if f.ids[id] {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListByDepartmentID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) ListByScheduleID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

type fakeResolver struct{}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (*schedule.WorkSchedule, error) {
	return &schedule.WorkSchedule{
		ID:        "ws-1",
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
	}, nil
}

func newTestService(repo *fakeAttendanceRepo) ingest.IngestService {
	return NewIngestService(repo, &fakeEmployeeRepo{ids: map[string]bool{"emp-1": true}}, &fakeResolver{}, nil)
}

func strPtr(s string) *string { return &s }

func TestIngestAppliesRowsAndClassifies(t *testing.T) {
	repo := &fakeAttendanceRepo{records: map[string]attendance.Record{}}
	svc := newTestService(repo)

	result, err := svc.Ingest(context.Background(), ingest.IngestRequest{
		DeviceID: "gate-1",
		Rows: []ingest.PunchRow{
			{
				EmployeeID: "emp-1",
				Date:       "2024-03-04",
				CheckIn:    strPtr("2024-03-04T09:20:00Z"),
				CheckOut:   strPtr("2024-03-04T17:00:00Z"),
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 0, result.Rejected)

	rec := repo.records[key("emp-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, attendance.StatusLateArrival, rec.Status)
	assert.True(t, rec.IsLate)
	require.NotNil(t, rec.LateMinutes)
	assert.Equal(t, 20, *rec.LateMinutes)
	assert.NotEmpty(t, rec.ID)
}

func TestIngestMergesWidestSpan(t *testing.T) {
	repo := &fakeAttendanceRepo{records: map[string]attendance.Record{}}
	svc := newTestService(repo)

	_, err := svc.Ingest(context.Background(), ingest.IngestRequest{
		DeviceID: "gate-1",
		Rows: []ingest.PunchRow{
			{EmployeeID: "emp-1", Date: "2024-03-04", CheckIn: strPtr("2024-03-04T09:30:00Z")},
			{EmployeeID: "emp-1", Date: "2024-03-04", CheckIn: strPtr("2024-03-04T09:00:00Z"), CheckOut: strPtr("2024-03-04T16:00:00Z")},
			{EmployeeID: "emp-1", Date: "2024-03-04", CheckOut: strPtr("2024-03-04T17:30:00Z")},
		},
	})
	require.NoError(t, err)

	rec := repo.records[key("emp-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))]
	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, 9, rec.CheckIn.Hour())
	assert.Equal(t, 0, rec.CheckIn.Minute())
	assert.Equal(t, 17, rec.CheckOut.Hour())
	assert.Equal(t, 30, rec.CheckOut.Minute())
	assert.Equal(t, attendance.StatusOvertime, rec.Status)
}

func TestIngestRejectsBadRowsAndContinues(t *testing.T) {
	repo := &fakeAttendanceRepo{records: map[string]attendance.Record{}}
	svc := newTestService(repo)

	result, err := svc.Ingest(context.Background(), ingest.IngestRequest{
		DeviceID: "gate-1",
		Rows: []ingest.PunchRow{
			{EmployeeID: "ghost", Date: "2024-03-04", CheckIn: strPtr("2024-03-04T09:00:00Z")},
			{EmployeeID: "emp-1", Date: "bad-date", CheckIn: strPtr("2024-03-04T09:00:00Z")},
			{EmployeeID: "emp-1", Date: "2024-03-04"},
			{EmployeeID: "emp-1", Date: "2024-03-04", CheckIn: strPtr("2024-03-04T09:00:00Z")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 3, result.Rejected)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Equal(t, 1, result.Errors[1].Index)
	assert.Equal(t, 2, result.Errors[2].Index)
}

func TestIngestValidatesEnvelope(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{records: map[string]attendance.Record{}})

	_, err := svc.Ingest(context.Background(), ingest.IngestRequest{DeviceID: "", Rows: nil})
	assert.Error(t, err)
}
