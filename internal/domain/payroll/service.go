package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	GetPayslip(ctx context.Context, employeeID int64) (PayslipResponse, error)
	GetPayrollHistory(ctx context.Context, employeeID int64) ([]PayrollHistoryResponse, error)
	WritePayslipPDF(ctx context.Context, employeeID int64, w io.Writer) (filename string, err error)
	WritePayrollHistoryWorkbook(ctx context.Context, employeeID int64, w io.Writer) (filename string, err error)
}
