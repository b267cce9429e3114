package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	// ApplyOnboardingPlan writes every plan entry in order as one batch.
	// It must run inside a transaction.
	ApplyOnboardingPlan(ctx context.Context, plan OnboardingPlan) error

	GetSalarySnapshot(ctx context.Context, employeeID int64) (SalarySnapshot, error)
	CreateAttendanceAdjustments(ctx context.Context, rows []AttendanceAdjustment) error

	// ApplyLeaveDeduction adds amount to total_deductions and subtracts it from
	// net_salary on the employee's period dated periodDate. It returns the
	// number of rows patched.
	ApplyLeaveDeduction(ctx context.Context, employeeID int64, periodDate time.Time, amount decimal.Decimal) (int64, error)
	CreatePeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)

	GetLatestPayslip(ctx context.Context, employeeID int64) (PayslipDetail, error)
	GetHistory(ctx context.Context, employeeID int64) ([]PayrollPeriod, error)
}
