package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
