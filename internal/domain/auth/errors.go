package auth

import "errors"

var (
	ErrInvalidAdminCredentials = errors.New("Invalid admin credentials")
	ErrEmployeeNotFound        = errors.New("Employee not found")
	ErrInvalidPassword         = errors.New("Invalid password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
)
