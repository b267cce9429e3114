package payroll

import (
	"github.com/shopspring/decimal"
)

type PayslipResponse struct {
	PayslipID       int64           `json:"payslip_id"`
	Reference       string          `json:"reference"`
	PayslipDate     string          `json:"payslip_date"`
	EmployeeID      int64           `json:"employee_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	JobTitle        string          `json:"job_title"`
	DepartmentName  *string         `json:"department_name"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	PayrollID       int64           `json:"payroll_id"`
	PayrollDate     string          `json:"payroll_date"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	PayrollNet      decimal.Decimal `json:"payroll_net_salary"`
}

type PayrollHistoryResponse struct {
	PayrollID       int64           `json:"payroll_id"`
	EmployeeID      int64           `json:"employee_id"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	PayrollDate     string          `json:"payroll_date"`
}

const dateLayout = "2006-01-02"

func NewPayslipResponse(d PayslipDetail) PayslipResponse {
	return PayslipResponse{
		PayslipID:       d.PayslipID,
		Reference:       d.Reference.String(),
		PayslipDate:     d.PayslipDate.Format(dateLayout),
		EmployeeID:      d.EmployeeID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		JobTitle:        d.JobTitle,
		DepartmentName:  d.DepartmentName,
		BasicSalary:     d.BasicSalary,
		GrossSalary:     d.GrossSalary,
		NetSalary:       d.NetSalary,
		PayrollID:       d.PayrollID,
		PayrollDate:     d.PayrollDate.Format(dateLayout),
		TotalEarnings:   d.TotalEarnings,
		TotalDeductions: d.TotalDeductions,
		PayrollNet:      d.PayrollNet,
	}
}

func NewPayrollHistoryResponse(p PayrollPeriod) PayrollHistoryResponse {
	return PayrollHistoryResponse{
		PayrollID:       p.ID,
		EmployeeID:      p.EmployeeID,
		TotalEarnings:   p.TotalEarnings,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		PayrollDate:     p.PayrollDate.Format(dateLayout),
	}
}
