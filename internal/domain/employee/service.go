package employee

import "context"

type EmployeeService interface {
	Onboard(ctx context.Context, req OnboardEmployeeRequest) (OnboardEmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	CheckEmployeeData(ctx context.Context, employeeID int64) (DataCheckResponse, error)
}
