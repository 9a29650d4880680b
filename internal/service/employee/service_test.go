package employee

import (
	"context"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListByDepartmentID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByScheduleID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func TestCreateEmployeeHashesPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)

	result, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:          "Ana Lima",
		Email:             "ana@example.com",
		Password:          "correct horse",
		Role:              employee.RoleEmployee,
		HireDate:          "2024-01-15",
		LeaveDaysPerMonth: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2024-01-15", result.HireDate)

	require.Len(t, repo.employees, 1)
	stored := repo.employees[0]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestCreateEmployeeRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com"},
	}}
	svc := NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:          "Ana Lima",
		Email:             "ana@example.com",
		Password:          "correct horse",
		Role:              employee.RoleEmployee,
		HireDate:          "2024-01-15",
		LeaveDaysPerMonth: 2,
	})
	assert.ErrorIs(t, err, employee.ErrEmailAlreadyExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName: "",
		Email:    "not-an-email",
		Password: "short",
		Role:     "supervisor",
		HireDate: "15-01-2024",
	})
	assert.Error(t, err)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.GetEmployee(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
