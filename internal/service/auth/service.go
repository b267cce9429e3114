package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single configured administrator account.
type AdminCredentials struct {
	Username string
	Password string
}

type AuthServiceImpl struct {
	admin        AdminCredentials
	employeeRepo employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(admin AdminCredentials, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:        admin,
		employeeRepo: employeeRepo,
		Service:      jwtService,
	}
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.AdminLoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.admin.Password)) == 1
	if !userOK || !passOK {
		slog.Warn("admin login rejected", "username", req.Username)
		return auth.LoginResponse{}, auth.ErrInvalidAdminCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(req.Username, auth.RoleAdmin, nil)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Success:   true,
		Role:      auth.RoleAdmin,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// LoginEmployee implements auth.AuthService.
func (a *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.EmployeeLoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrEmployeeNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Employees onboarded without a password cannot log in.
	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidPassword
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(strconv.FormatInt(emp.ID, 10), auth.RoleEmployee, &emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	resp := employee.NewEmployeeResponse(emp)
	return auth.LoginResponse{
		Success:   true,
		Role:      auth.RoleEmployee,
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  &resp,
	}, nil
}
