package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Public table names, shared with the generic record accessors.
const (
	TableEmployees       = "Employees"
	TableSalaries        = "Salaries"
	TablePayroll         = "Payroll"
	TableTaxation        = "Taxation"
	TableDeductions      = "Deductions"
	TableUserRoles       = "UserRoles"
	TableOvertime        = "Overtime"
	TableBonuses         = "Bonuses"
	TableAttendance      = "Attendance"
	TableBankDetails     = "BankDetails"
	TableLeaveManagement = "LeaveManagement"
	TableAllowances      = "Allowances"
	TableJobTitles       = "JobTitles"
	TableSalaryGrades    = "SalaryGrades"
	TablePaySlips        = "PaySlips"
)

// OnboardingInput is the part of an onboarding request that decides which
// payroll rows get written, besides the computed breakdown.
type OnboardingInput struct {
	EmployeeID      int64
	JobTitle        string
	RoleName        string
	OvertimeHours   decimal.Decimal
	UnpaidLeaveDays decimal.Decimal

	BankName      string
	AccountNumber string
	IFSCCode      string

	LeaveType  string
	LeaveStart *time.Time
	LeaveEnd   *time.Time

	AllowanceName   string
	AllowanceAmount decimal.Decimal

	GradeName     string
	MinimumSalary *decimal.Decimal
	MaximumSalary *decimal.Decimal

	Today            time.Time
	PayslipReference uuid.UUID
}

type PlanEntry struct {
	Table string
	Row   any
}

// OnboardingPlan is the ordered list of rows written after the employee row.
// The PaySlips entry is always last because its insert reads the Payroll row
// written earlier in the same transaction.
type OnboardingPlan struct {
	EmployeeID int64
	Entries    []PlanEntry
}

func (p OnboardingPlan) Tables() []string {
	tables := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		tables[i] = e.Table
	}
	return tables
}

func (p *OnboardingPlan) add(table string, row any) {
	p.Entries = append(p.Entries, PlanEntry{Table: table, Row: row})
}

// BuildOnboardingPlan decides which rows apply for in and fills them from b.
func BuildOnboardingPlan(in OnboardingInput, b Breakdown) OnboardingPlan {
	id := in.EmployeeID
	today := dateOnly(in.Today)
	plan := OnboardingPlan{EmployeeID: id}

	plan.add(TableSalaries, SalarySnapshot{
		EmployeeID:  id,
		BasicSalary: b.BasicSalary,
		GrossSalary: b.GrossSalary,
		NetSalary:   b.NetSalary,
	})
	plan.add(TablePayroll, PayrollPeriod{
		EmployeeID:      id,
		TotalEarnings:   b.GrossSalary,
		TotalDeductions: b.TotalDeductions,
		NetSalary:       b.NetSalary,
		PayrollDate:     PeriodStart(today),
	})
	plan.add(TableTaxation, TaxRecord{
		EmployeeID:    id,
		TaxAmount:     b.TaxAmount,
		TaxPercentage: b.TaxPercentage,
		TaxYear:       today.Year(),
	})
	plan.add(TableDeductions, DeductionRecord{
		EmployeeID:      id,
		Tax:             b.TaxAmount,
		Insurance:       b.InsurancePremium,
		LoanRepayment:   b.LoanRepayment,
		TotalDeductions: b.TotalDeductions,
		DeductionName:   DefaultDeductionName,
		Amount:          b.TotalDeductions,
	})

	roleName := in.RoleName
	if roleName == "" {
		roleName = DefaultRoleName
	}
	plan.add(TableUserRoles, RoleAssignment{EmployeeID: id, RoleName: roleName})

	if in.OvertimeHours.IsPositive() {
		plan.add(TableOvertime, OvertimeRecord{
			EmployeeID:    id,
			OvertimeHours: in.OvertimeHours,
			RatePerHour:   b.RatePerHour,
			OvertimePay:   b.OvertimePay,
			OvertimeDate:  today,
			TotalAmount:   b.OvertimePay,
		})
	}

	if b.BonusAmount.IsPositive() {
		plan.add(TableBonuses, BonusRecord{
			EmployeeID:  id,
			BonusAmount: b.BonusAmount,
			Amount:      b.BonusAmount,
			BonusDate:   today,
		})
	}

	if in.UnpaidLeaveDays.IsPositive() {
		plan.add(TableAttendance, AttendanceAdjustment{
			EmployeeID:       id,
			AttendanceDate:   today,
			UnpaidLeaveDays:  in.UnpaidLeaveDays,
			SalaryAdjustment: b.UnpaidLeaveAdjustment,
		})
	}

	if in.BankName != "" && in.AccountNumber != "" && in.IFSCCode != "" {
		plan.add(TableBankDetails, BankDetail{
			EmployeeID:    id,
			BankName:      in.BankName,
			AccountNumber: in.AccountNumber,
			IFSCCode:      in.IFSCCode,
		})
	}

	if in.LeaveType != "" && in.LeaveStart != nil && in.LeaveEnd != nil {
		plan.add(TableLeaveManagement, leave.LeaveRequest{
			EmployeeID: id,
			LeaveType:  in.LeaveType,
			LeaveStart: dateOnly(*in.LeaveStart),
			LeaveEnd:   dateOnly(*in.LeaveEnd),
			Status:     leave.StatusPending,
		})
	}

	if in.AllowanceName != "" && in.AllowanceAmount.IsPositive() {
		plan.add(TableAllowances, Allowance{
			EmployeeID:    id,
			AllowanceName: in.AllowanceName,
			Amount:        in.AllowanceAmount,
		})
	}

	plan.add(TableJobTitles, JobTitle{Name: in.JobTitle})

	if in.GradeName != "" {
		plan.add(TableSalaryGrades, SalaryGrade{
			Name:          in.GradeName,
			MinimumSalary: in.MinimumSalary,
			MaximumSalary: in.MaximumSalary,
		})
	}

	plan.add(TablePaySlips, Payslip{
		EmployeeID:  id,
		PayslipDate: today,
		Reference:   in.PayslipReference,
	})

	return plan
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
