package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

type fakeScheduleRepo struct {
	byID           map[string]schedule.WorkSchedule
	byDepartmentID map[string]*schedule.WorkSchedule
	any            *schedule.WorkSchedule
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (schedule.WorkSchedule, error) {
	ws, ok := f.byID[id]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	return ws, nil
}

func (f *fakeScheduleRepo) GetByDepartmentID(_ context.Context, departmentID string) (*schedule.WorkSchedule, error) {
	return f.byDepartmentID[departmentID], nil
}

func (f *fakeScheduleRepo) GetAny(_ context.Context) (*schedule.WorkSchedule, error) {
	return f.any, nil
}

func (f *fakeScheduleRepo) List(_ context.Context) ([]schedule.WorkSchedule, error) { return nil, nil }
func (f *fakeScheduleRepo) Create(_ context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	return ws, nil
}
func (f *fakeScheduleRepo) Update(_ context.Context, _ schedule.WorkSchedule) error { return nil }

func strPtr(s string) *string { return &s }

func fixedWS(id string) schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:        id,
		Name:      "Office Hours",
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
	}
}

func TestResolveDirectAssignmentWinsOverDepartment(t *testing.T) {
	direct := fixedWS("ws-direct")
	dept := fixedWS("ws-dept")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", WorkScheduleID: strPtr("ws-direct"), DepartmentID: strPtr("dept-1")},
		}},
		&fakeScheduleRepo{
			byID:           map[string]schedule.WorkSchedule{"ws-direct": direct},
			byDepartmentID: map[string]*schedule.WorkSchedule{"dept-1": &dept},
		},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "ws-direct", ws.ID)
}

func TestResolveFallsBackToDepartment(t *testing.T) {
	dept := fixedWS("ws-dept")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", DepartmentID: strPtr("dept-1")},
		}},
		&fakeScheduleRepo{
			byDepartmentID: map[string]*schedule.WorkSchedule{"dept-1": &dept},
		},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "ws-dept", ws.ID)
}

func TestResolveDanglingDirectReferenceFallsThrough(t *testing.T) {
	dept := fixedWS("ws-dept")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", WorkScheduleID: strPtr("ws-gone"), DepartmentID: strPtr("dept-1")},
		}},
		&fakeScheduleRepo{
			byDepartmentID: map[string]*schedule.WorkSchedule{"dept-1": &dept},
		},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "ws-dept", ws.ID)
}

func TestResolveFallsBackToAnySchedule(t *testing.T) {
	fallback := fixedWS("ws-any")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1"},
		}},
		&fakeScheduleRepo{any: &fallback},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "ws-any", ws.ID)
}

func TestResolveNoScheduleAnywhereIsNotAnError(t *testing.T) {
	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1"},
		}},
		&fakeScheduleRepo{},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestResolveUnknownEmployee(t *testing.T) {
	r := NewResolver(&fakeEmployeeRepo{}, &fakeScheduleRepo{})

	_, err := r.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestResolveFlexibleHoursEmployeeOverridesFixedSchedule(t *testing.T) {
	direct := fixedWS("ws-direct")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {
				ID:                  "emp-1",
				WorkScheduleID:      strPtr("ws-direct"),
				FlexibleHours:       true,
				RequiredHoursPerDay: 6,
			},
		}},
		&fakeScheduleRepo{byID: map[string]schedule.WorkSchedule{"ws-direct": direct}},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.True(t, ws.IsFlexible)
	assert.Equal(t, 6.0, ws.TotalWorkHours)
}

func TestResolveFlexibleOverrideDerivesHoursFromSpan(t *testing.T) {
	direct := fixedWS("ws-direct")

	r := NewResolver(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", WorkScheduleID: strPtr("ws-direct"), FlexibleHours: true},
		}},
		&fakeScheduleRepo{byID: map[string]schedule.WorkSchedule{"ws-direct": direct}},
	)

	ws, err := r.Resolve(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.True(t, ws.IsFlexible)
	assert.Equal(t, 8.0, ws.TotalWorkHours)
}
