package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalarySnapshot - basic/gross/net salary as of the last recompute
type SalarySnapshot struct {
	ID          int64
	EmployeeID  int64
	BasicSalary decimal.Decimal
	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal
}

// PayrollPeriod - one computed payroll run. NetSalary = TotalEarnings - TotalDeductions.
type PayrollPeriod struct {
	ID              int64
	EmployeeID      int64
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	PayrollDate     time.Time
}

type TaxRecord struct {
	EmployeeID    int64
	TaxAmount     decimal.Decimal
	TaxPercentage decimal.Decimal
	TaxYear       int
}

const DefaultDeductionName = "default_deduction"

type DeductionRecord struct {
	EmployeeID      int64
	Tax             decimal.Decimal
	Insurance       decimal.Decimal
	LoanRepayment   decimal.Decimal
	TotalDeductions decimal.Decimal
	DeductionName   string
	Amount          decimal.Decimal
}

const DefaultRoleName = "Employee"

type RoleAssignment struct {
	EmployeeID int64
	RoleName   string
}

type OvertimeRecord struct {
	EmployeeID    int64
	OvertimeHours decimal.Decimal
	RatePerHour   decimal.Decimal
	OvertimePay   decimal.Decimal
	OvertimeDate  time.Time
	TotalAmount   decimal.Decimal
}

type BonusRecord struct {
	EmployeeID  int64
	BonusAmount decimal.Decimal
	Amount      decimal.Decimal
	BonusDate   time.Time
}

// AttendanceAdjustment - a dated attendance row carrying unpaid leave and the
// salary deducted for it. Leave-derived rows have no clock times.
type AttendanceAdjustment struct {
	EmployeeID       int64
	AttendanceDate   time.Time
	ClockInTime      *time.Time
	ClockOutTime     *time.Time
	UnpaidLeaveDays  decimal.Decimal
	SalaryAdjustment decimal.Decimal
}

type BankDetail struct {
	EmployeeID    int64
	BankName      string
	AccountNumber string
	IFSCCode      string
}

type Allowance struct {
	EmployeeID    int64
	AllowanceName string
	Amount        decimal.Decimal
}

// JobTitle - shared catalog entry keyed by name
type JobTitle struct {
	Name string
}

// SalaryGrade - shared catalog entry keyed by name
type SalaryGrade struct {
	Name          string
	MinimumSalary *decimal.Decimal
	MaximumSalary *decimal.Decimal
}

// Payslip links an employee to their latest payroll period.
type Payslip struct {
	EmployeeID  int64
	PayslipDate time.Time
	Reference   uuid.UUID
}

// PayslipDetail - latest payslip joined with employee, salary and payroll data
type PayslipDetail struct {
	PayslipID       int64
	Reference       uuid.UUID
	PayslipDate     time.Time
	EmployeeID      int64
	FirstName       string
	LastName        string
	Email           string
	JobTitle        string
	DepartmentName  *string
	BasicSalary     decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	PayrollID       int64
	PayrollDate     time.Time
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	PayrollNet      decimal.Decimal
}
