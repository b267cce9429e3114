package auth

import "context"

type AuthService interface {
	LoginAdmin(ctx context.Context, req AdminLoginRequest) (LoginResponse, error)
	LoginEmployee(ctx context.Context, req EmployeeLoginRequest) (LoginResponse, error)
}
