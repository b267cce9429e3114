package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID map[int64]employee.Employee
	err  error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

var testAdmin = AdminCredentials{Username: "admin", Password: "admin123"}

func newTestService(t *testing.T, repo *fakeEmployeeRepo) (auth.AuthService, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(testAdmin, repo, jwtService), jwtService
}

func hashPassword(t *testing.T, password string) *string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hashed)
	return &h
}

// ===== ADMIN LOGIN TESTS =====

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	// Arrange
	svc, jwtService := newTestService(t, &fakeEmployeeRepo{})

	// Act
	resp, err := svc.LoginAdmin(context.Background(), auth.AdminLoginRequest{Username: "admin", Password: "admin123"})

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, auth.RoleAdmin, resp.Role)
	assert.Nil(t, resp.Employee)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

	token, err := jwtService.JWTAuth().Decode(resp.Token)
	require.NoError(t, err)
	role, _ := token.Get("role")
	assert.Equal(t, auth.RoleAdmin, role)
	assert.Equal(t, "admin", token.Subject())
}

func TestAuthService_LoginAdmin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t, &fakeEmployeeRepo{})

	for _, req := range []auth.AdminLoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "admin123"},
	} {
		_, err := svc.LoginAdmin(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrInvalidAdminCredentials)
	}
}

func TestAuthService_LoginAdmin_MissingFields(t *testing.T) {
	svc, _ := newTestService(t, &fakeEmployeeRepo{})

	_, err := svc.LoginAdmin(context.Background(), auth.AdminLoginRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

// ===== EMPLOYEE LOGIN TESTS =====

func TestAuthService_LoginEmployee_Success(t *testing.T) {
	// Arrange
	repo := &fakeEmployeeRepo{byID: map[int64]employee.Employee{
		7: {ID: 7, FirstName: "Ada", Salary: decimal.NewFromInt(50000), PasswordHash: hashPassword(t, "pa55word")},
	}}
	svc, jwtService := newTestService(t, repo)

	// Act
	resp, err := svc.LoginEmployee(context.Background(), auth.EmployeeLoginRequest{EmployeeID: 7, Password: "pa55word"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, auth.RoleEmployee, resp.Role)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, int64(7), resp.Employee.EmployeeID)

	token, err := jwtService.JWTAuth().Decode(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "7", token.Subject())
	employeeID, ok := token.Get("employee_id")
	require.True(t, ok)
	assert.EqualValues(t, 7, employeeID)
}

func TestAuthService_LoginEmployee_Failures(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[int64]employee.Employee{
		7: {ID: 7, PasswordHash: hashPassword(t, "pa55word")},
		8: {ID: 8},
	}}
	svc, _ := newTestService(t, repo)

	tests := []struct {
		name    string
		req     auth.EmployeeLoginRequest
		wantErr error
	}{
		{"unknown employee", auth.EmployeeLoginRequest{EmployeeID: 99, Password: "x"}, auth.ErrEmployeeNotFound},
		{"wrong password", auth.EmployeeLoginRequest{EmployeeID: 7, Password: "nope"}, auth.ErrInvalidPassword},
		{"no password set", auth.EmployeeLoginRequest{EmployeeID: 8, Password: "anything"}, auth.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.LoginEmployee(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, resp.Token)
		})
	}
}

func TestAuthService_LoginEmployee_StoreError(t *testing.T) {
	storeErr := errors.New("pool closed")
	svc, _ := newTestService(t, &fakeEmployeeRepo{err: storeErr})

	_, err := svc.LoginEmployee(context.Background(), auth.EmployeeLoginRequest{EmployeeID: 7, Password: "x"})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, auth.ErrEmployeeNotFound)
}
