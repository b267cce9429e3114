package payroll

import (
	"context"
	"io"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/document"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{payrollRepo: payrollRepo}
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID int64) (payroll.PayslipResponse, error) {
	detail, err := s.payrollRepo.GetLatestPayslip(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payroll.NewPayslipResponse(detail), nil
}

// GetPayrollHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollHistory(ctx context.Context, employeeID int64) ([]payroll.PayrollHistoryResponse, error) {
	history, err := s.payrollRepo.GetHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayrollHistoryResponse, 0, len(history))
	for _, p := range history {
		resp = append(resp, payroll.NewPayrollHistoryResponse(p))
	}
	return resp, nil
}

// WritePayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) WritePayslipPDF(ctx context.Context, employeeID int64, w io.Writer) (string, error) {
	detail, err := s.payrollRepo.GetLatestPayslip(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if err := document.WritePayslipPDF(w, detail); err != nil {
		return "", err
	}
	return document.PayslipFilename(detail), nil
}

// WritePayrollHistoryWorkbook implements payroll.PayrollService. An employee
// without payroll periods gets a workbook with only the header row.
func (s *PayrollServiceImpl) WritePayrollHistoryWorkbook(ctx context.Context, employeeID int64, w io.Writer) (string, error) {
	history, err := s.payrollRepo.GetHistory(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if err := document.WritePayrollHistoryWorkbook(w, history); err != nil {
		return "", err
	}
	return document.PayrollHistoryFilename(employeeID), nil
}
