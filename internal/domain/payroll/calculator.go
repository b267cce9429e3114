package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// salaryDaysPerMonth is the divisor that turns a monthly basic salary
	// into a daily rate for leave adjustments.
	salaryDaysPerMonth = 30
	workHoursPerDay    = 8
)

// Config holds the fixed payroll constants. It is built once at start-up by
// DefaultConfig and never mutated afterwards.
type Config struct {
	OvertimeRate     decimal.Decimal
	MonthlyWorkHours decimal.Decimal
	TaxRate          decimal.Decimal
	InsurancePremium decimal.Decimal
	LoanRepayment    decimal.Decimal
	TotalWorkingDays decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		OvertimeRate:     decimal.RequireFromString("1.5"),
		MonthlyWorkHours: decimal.NewFromInt(160),
		TaxRate:          decimal.RequireFromString("0.1"),
		InsurancePremium: decimal.NewFromInt(100),
		LoanRepayment:    decimal.NewFromInt(200),
		TotalWorkingDays: decimal.NewFromInt(20),
	}
}

// ComputeInput carries the per-employee inputs. Zero values mean "not
// provided"; a zero TotalWorkingDays falls back to Config.TotalWorkingDays.
type ComputeInput struct {
	BasicSalary      decimal.Decimal
	OvertimeHours    decimal.Decimal
	BonusPercentage  decimal.Decimal
	UnpaidLeaveDays  decimal.Decimal
	TotalWorkingDays decimal.Decimal
}

// Breakdown is every figure derived from one ComputeInput. The persisted rows
// use these values as-is.
type Breakdown struct {
	BasicSalary           decimal.Decimal
	HourlyRate            decimal.Decimal
	OvertimePay           decimal.Decimal
	BonusAmount           decimal.Decimal
	GrossSalary           decimal.Decimal
	TaxAmount             decimal.Decimal
	TaxPercentage         decimal.Decimal
	InsurancePremium      decimal.Decimal
	LoanRepayment         decimal.Decimal
	TotalDeductions       decimal.Decimal
	NetSalary             decimal.Decimal
	UnpaidLeaveAdjustment decimal.Decimal
	TotalWorkingDays      decimal.Decimal
	RatePerHour           decimal.Decimal
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

func (c *Calculator) Config() Config {
	return c.cfg
}

// Compute derives the payroll breakdown. It has no side effects.
func (c *Calculator) Compute(in ComputeInput) Breakdown {
	basic := in.BasicSalary

	hourlyRate := basic.Div(c.cfg.MonthlyWorkHours)
	overtimePay := in.OvertimeHours.Mul(hourlyRate).Mul(c.cfg.OvertimeRate)
	bonusAmount := basic.Mul(in.BonusPercentage.Div(decimal.NewFromInt(100)))
	gross := basic.Add(overtimePay).Add(bonusAmount)

	tax := gross.Mul(c.cfg.TaxRate)
	totalDeductions := tax.Add(c.cfg.InsurancePremium).Add(c.cfg.LoanRepayment)
	net := gross.Sub(totalDeductions)

	unpaidAdjustment := in.UnpaidLeaveDays.Mul(basic.Div(decimal.NewFromInt(salaryDaysPerMonth)))

	workingDays := in.TotalWorkingDays
	if !workingDays.IsPositive() {
		workingDays = c.cfg.TotalWorkingDays
	}
	ratePerHour := basic.Div(workingDays.Mul(decimal.NewFromInt(workHoursPerDay)))

	return Breakdown{
		BasicSalary:           basic,
		HourlyRate:            hourlyRate,
		OvertimePay:           overtimePay,
		BonusAmount:           bonusAmount,
		GrossSalary:           gross,
		TaxAmount:             tax,
		TaxPercentage:         c.cfg.TaxRate.Mul(decimal.NewFromInt(100)),
		InsurancePremium:      c.cfg.InsurancePremium,
		LoanRepayment:         c.cfg.LoanRepayment,
		TotalDeductions:       totalDeductions,
		NetSalary:             net,
		UnpaidLeaveAdjustment: unpaidAdjustment,
		TotalWorkingDays:      workingDays,
		RatePerHour:           ratePerHour,
	}
}

// LeaveAdjustment returns the daily salary deducted per leave day and the
// total for days days.
func (c *Calculator) LeaveAdjustment(basic decimal.Decimal, days int) (daily, total decimal.Decimal) {
	daily = basic.Div(decimal.NewFromInt(salaryDaysPerMonth))
	return daily, daily.Mul(decimal.NewFromInt(int64(days)))
}

// PeriodStart returns the first day of t's month, which dates a payroll period.
func PeriodStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
