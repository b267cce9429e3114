package record

import "context"

type RecordService interface {
	GetRecord(ctx context.Context, table string, employeeID int64) (Record, error)
	GetAllRecords(ctx context.Context, table string, employeeID int64) ([]Record, error)
	AddRecord(ctx context.Context, table string, req AddRecordRequest) (AddRecordResponse, error)
	UpdateData(ctx context.Context, table string, req UpdateDataRequest) (AffectedResponse, error)
	DeleteData(ctx context.Context, table string, id int64) (AffectedResponse, error)
}
