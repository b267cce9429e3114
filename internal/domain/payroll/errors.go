package payroll

import "errors"

var (
	ErrSalaryNotFound  = errors.New("salary record not found")
	ErrPayslipNotFound = errors.New("payslip not found")
)
