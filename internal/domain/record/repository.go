package record

import "context"

type ColumnValue struct {
	Column string
	Value  any
}

type RecordRepository interface {
	FindFirst(ctx context.Context, t Table, employeeID int64) (Record, error)
	FindAll(ctx context.Context, t Table, employeeID int64) ([]Record, error)
	Exists(ctx context.Context, t Table, employeeID int64) (bool, error)
	Insert(ctx context.Context, t Table, values []ColumnValue) (int64, error)
	Update(ctx context.Context, t Table, id int64, values []ColumnValue) (int64, error)
	Delete(ctx context.Context, t Table, id int64) (int64, error)
}
