package auth

import (
	"context"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
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

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID:           "emp-1",
			FullName:     "Ana Lima",
			Email:        "ana@example.com",
			PasswordHash: string(hash),
			Role:         employee.RoleAdmin,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestLoginIssuesAccessToken(t *testing.T) {
	svc, jwtService := newTestService(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.NotZero(t, result.ExpiresAt)

	token, err := jwtService.JWTAuth().Decode(result.AccessToken)
	require.NoError(t, err)

	employeeID, _ := token.Get("employee_id")
	assert.Equal(t, "emp-1", employeeID)
	role, _ := token.Get("role")
	assert.Equal(t, employee.RoleAdmin, role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidatesRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
