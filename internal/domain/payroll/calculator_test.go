package payroll

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestCalculator_Compute_ReferenceExample(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	b := calc.Compute(ComputeInput{
		BasicSalary:      dec("50000"),
		OvertimeHours:    dec("10"),
		BonusPercentage:  dec("5"),
		UnpaidLeaveDays:  dec("0"),
		TotalWorkingDays: dec("20"),
	})

	assertDecimal(t, "312.5", b.HourlyRate, "HourlyRate")
	assertDecimal(t, "4687.5", b.OvertimePay, "OvertimePay")
	assertDecimal(t, "2500", b.BonusAmount, "BonusAmount")
	assertDecimal(t, "57187.5", b.GrossSalary, "GrossSalary")
	assertDecimal(t, "5718.75", b.TaxAmount, "TaxAmount")
	assertDecimal(t, "10", b.TaxPercentage, "TaxPercentage")
	assertDecimal(t, "6018.75", b.TotalDeductions, "TotalDeductions")
	assertDecimal(t, "51168.75", b.NetSalary, "NetSalary")
	assertDecimal(t, "312.5", b.RatePerHour, "RatePerHour")
	assertDecimal(t, "0", b.UnpaidLeaveAdjustment, "UnpaidLeaveAdjustment")
}

func TestCalculator_Compute(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name       string
		in         ComputeInput
		gross      string
		deductions string
		net        string
	}{
		{
			name:       "zero salary still carries fixed deductions",
			in:         ComputeInput{BasicSalary: dec("0")},
			gross:      "0",
			deductions: "300",
			net:        "-300",
		},
		{
			name:       "basic salary only",
			in:         ComputeInput{BasicSalary: dec("16000")},
			gross:      "16000",
			deductions: "1900",
			net:        "14100",
		},
		{
			name:       "bonus without overtime",
			in:         ComputeInput{BasicSalary: dec("20000"), BonusPercentage: dec("10")},
			gross:      "22000",
			deductions: "2500",
			net:        "19500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := calc.Compute(tt.in)
			assertDecimal(t, tt.gross, b.GrossSalary, "GrossSalary")
			assertDecimal(t, tt.deductions, b.TotalDeductions, "TotalDeductions")
			assertDecimal(t, tt.net, b.NetSalary, "NetSalary")
		})
	}
}

func TestCalculator_Compute_WorkingDaysFallback(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	defaulted := calc.Compute(ComputeInput{BasicSalary: dec("32000")})
	explicit := calc.Compute(ComputeInput{BasicSalary: dec("32000"), TotalWorkingDays: dec("25")})

	assertDecimal(t, "20", defaulted.TotalWorkingDays, "TotalWorkingDays")
	assertDecimal(t, "200", defaulted.RatePerHour, "RatePerHour")
	assertDecimal(t, "25", explicit.TotalWorkingDays, "TotalWorkingDays")
	assertDecimal(t, "160", explicit.RatePerHour, "RatePerHour")
}

func TestCalculator_Compute_UnpaidLeaveAdjustment(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	b := calc.Compute(ComputeInput{BasicSalary: dec("30000"), UnpaidLeaveDays: dec("2")})

	assertDecimal(t, "2000", b.UnpaidLeaveAdjustment, "UnpaidLeaveAdjustment")
	// Unpaid leave is recorded separately and does not change the net salary.
	assertDecimal(t, "26700", b.NetSalary, "NetSalary")
}

func TestCalculator_Compute_Identities(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		in := ComputeInput{
			BasicSalary:      decimal.NewFromInt(rng.Int63n(500000)).Div(decimal.NewFromInt(100)),
			OvertimeHours:    decimal.NewFromInt(rng.Int63n(80)),
			BonusPercentage:  decimal.NewFromInt(rng.Int63n(50)),
			UnpaidLeaveDays:  decimal.NewFromInt(rng.Int63n(10)),
			TotalWorkingDays: decimal.NewFromInt(rng.Int63n(31)),
		}
		b := calc.Compute(in)

		assert.True(t, b.NetSalary.Equal(b.GrossSalary.Sub(b.TotalDeductions)), "net = gross - deductions for %+v", in)
		assert.True(t, b.GrossSalary.Equal(b.BasicSalary.Add(b.OvertimePay).Add(b.BonusAmount)), "gross = basic + overtime + bonus for %+v", in)
		assert.True(t, b.TotalDeductions.Equal(b.TaxAmount.Add(b.InsurancePremium).Add(b.LoanRepayment)), "deductions sum for %+v", in)
	}
}

func TestCalculator_LeaveAdjustment(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	daily, total := calc.LeaveAdjustment(dec("30000"), 3)

	assertDecimal(t, "1000", daily, "daily")
	assertDecimal(t, "3000", total, "total")
}

func TestPeriodStart(t *testing.T) {
	got := PeriodStart(time.Date(2024, time.June, 17, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}
