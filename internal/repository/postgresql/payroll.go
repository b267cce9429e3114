package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// ========== ONBOARDING ==========

const (
	insertSalarySQL = `
		INSERT INTO salaries (employee_id, basic_salary, gross_salary, net_salary)
		VALUES ($1, $2, $3, $4)`
	insertPayrollSQL = `
		INSERT INTO payroll (employee_id, total_earnings, total_deductions, net_salary, payroll_date)
		VALUES ($1, $2, $3, $4, $5)`
	insertTaxSQL = `
		INSERT INTO taxation (employee_id, tax_amount, tax_percentage, tax_year)
		VALUES ($1, $2, $3, $4)`
	insertDeductionSQL = `
		INSERT INTO deductions (employee_id, tax, insurance, loan_repayment, total_deductions, deduction_name, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	insertRoleSQL = `
		INSERT INTO user_roles (employee_id, role_name)
		VALUES ($1, $2)`
	insertOvertimeSQL = `
		INSERT INTO overtime (employee_id, overtime_hours, rate_per_hour, overtime_pay, overtime_date, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	insertBonusSQL = `
		INSERT INTO bonuses (employee_id, bonus_amount, amount, bonus_date)
		VALUES ($1, $2, $3, $4)`
	insertAttendanceSQL = `
		INSERT INTO attendance (employee_id, attendance_date, clock_in_time, clock_out_time, unpaid_leave_days, salary_adjustment)
		VALUES ($1, $2, $3, $4, $5, $6)`
	insertBankDetailSQL = `
		INSERT INTO bank_details (employee_id, bank_name, account_number, ifsc_code)
		VALUES ($1, $2, $3, $4)`
	insertLeaveSQL = `
		INSERT INTO leave_management (employee_id, leave_type, leave_start, leave_end, status)
		VALUES ($1, $2, $3, $4, $5)`
	insertAllowanceSQL = `
		INSERT INTO allowances (employee_id, allowance_name, amount)
		VALUES ($1, $2, $3)`
	upsertJobTitleSQL = `
		INSERT INTO job_titles (job_title_name)
		VALUES ($1)
		ON CONFLICT (job_title_name) DO NOTHING`
	upsertSalaryGradeSQL = `
		INSERT INTO salary_grades (grade_name, minimum_salary, maximum_salary)
		VALUES ($1, $2, $3)
		ON CONFLICT (grade_name) DO UPDATE SET
			minimum_salary = COALESCE(EXCLUDED.minimum_salary, salary_grades.minimum_salary),
			maximum_salary = COALESCE(EXCLUDED.maximum_salary, salary_grades.maximum_salary)`
	// The payroll row this links to was inserted earlier in the same batch.
	insertPayslipSQL = `
		INSERT INTO payslips (employee_id, payroll_id, payslip_date, reference)
		VALUES ($1, (SELECT payroll_id FROM payroll WHERE employee_id = $1 ORDER BY payroll_id DESC LIMIT 1), $2, $3)`
)

// ApplyOnboardingPlan implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ApplyOnboardingPlan(ctx context.Context, plan payroll.OnboardingPlan) error {
	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	for _, entry := range plan.Entries {
		if err := queuePlanEntry(batch, entry); err != nil {
			return err
		}
	}

	results := q.SendBatch(ctx, batch)
	for _, entry := range plan.Entries {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("%w: %s: %w", database.ErrInsert, entry.Table, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%w: %w", database.ErrInsert, err)
	}
	return nil
}

func queuePlanEntry(batch *pgx.Batch, entry payroll.PlanEntry) error {
	switch row := entry.Row.(type) {
	case payroll.SalarySnapshot:
		batch.Queue(insertSalarySQL, row.EmployeeID, row.BasicSalary, row.GrossSalary, row.NetSalary)
	case payroll.PayrollPeriod:
		batch.Queue(insertPayrollSQL, row.EmployeeID, row.TotalEarnings, row.TotalDeductions, row.NetSalary, row.PayrollDate)
	case payroll.TaxRecord:
		batch.Queue(insertTaxSQL, row.EmployeeID, row.TaxAmount, row.TaxPercentage, row.TaxYear)
	case payroll.DeductionRecord:
		batch.Queue(insertDeductionSQL, row.EmployeeID, row.Tax, row.Insurance, row.LoanRepayment,
			row.TotalDeductions, row.DeductionName, row.Amount)
	case payroll.RoleAssignment:
		batch.Queue(insertRoleSQL, row.EmployeeID, row.RoleName)
	case payroll.OvertimeRecord:
		batch.Queue(insertOvertimeSQL, row.EmployeeID, row.OvertimeHours, row.RatePerHour, row.OvertimePay,
			row.OvertimeDate, row.TotalAmount)
	case payroll.BonusRecord:
		batch.Queue(insertBonusSQL, row.EmployeeID, row.BonusAmount, row.Amount, row.BonusDate)
	case payroll.AttendanceAdjustment:
		queueAttendance(batch, row)
	case payroll.BankDetail:
		batch.Queue(insertBankDetailSQL, row.EmployeeID, row.BankName, row.AccountNumber, row.IFSCCode)
	case leave.LeaveRequest:
		batch.Queue(insertLeaveSQL, row.EmployeeID, row.LeaveType, row.LeaveStart, row.LeaveEnd, string(row.Status))
	case payroll.Allowance:
		batch.Queue(insertAllowanceSQL, row.EmployeeID, row.AllowanceName, row.Amount)
	case payroll.JobTitle:
		batch.Queue(upsertJobTitleSQL, row.Name)
	case payroll.SalaryGrade:
		batch.Queue(upsertSalaryGradeSQL, row.Name, row.MinimumSalary, row.MaximumSalary)
	case payroll.Payslip:
		batch.Queue(insertPayslipSQL, row.EmployeeID, row.PayslipDate, row.Reference)
	default:
		return fmt.Errorf("%w: %s: unsupported row type %T", database.ErrInsert, entry.Table, entry.Row)
	}
	return nil
}

func queueAttendance(batch *pgx.Batch, row payroll.AttendanceAdjustment) {
	batch.Queue(insertAttendanceSQL, row.EmployeeID, row.AttendanceDate, row.ClockInTime, row.ClockOutTime,
		row.UnpaidLeaveDays, row.SalaryAdjustment)
}

// ========== LEAVE ADJUSTMENT ==========

// GetSalarySnapshot implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSalarySnapshot(ctx context.Context, employeeID int64) (payroll.SalarySnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT salary_id, employee_id, basic_salary, gross_salary, net_salary
		FROM salaries
		WHERE employee_id = $1
		ORDER BY salary_id DESC
		LIMIT 1
	`

	var s payroll.SalarySnapshot
	err := q.QueryRow(ctx, query, employeeID).Scan(&s.ID, &s.EmployeeID, &s.BasicSalary, &s.GrossSalary, &s.NetSalary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalarySnapshot{}, payroll.ErrSalaryNotFound
		}
		return payroll.SalarySnapshot{}, fmt.Errorf("%w: failed to get salary: %w", database.ErrQuery, err)
	}
	return s, nil
}

// CreateAttendanceAdjustments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateAttendanceAdjustments(ctx context.Context, rows []payroll.AttendanceAdjustment) error {
	if len(rows) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	for _, row := range rows {
		queueAttendance(batch, row)
	}

	results := q.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("%w: attendance: %w", database.ErrInsert, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%w: attendance: %w", database.ErrInsert, err)
	}
	return nil
}

// ApplyLeaveDeduction implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ApplyLeaveDeduction(ctx context.Context, employeeID int64, periodDate time.Time, amount decimal.Decimal) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET total_deductions = total_deductions + $1,
			net_salary = net_salary - $1
		WHERE employee_id = $2 AND payroll_date = $3
	`

	commandTag, err := q.Exec(ctx, query, amount, employeeID, periodDate)
	if err != nil {
		return 0, fmt.Errorf("%w: payroll: %w", database.ErrUpdate, err)
	}
	return commandTag.RowsAffected(), nil
}

// CreatePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := insertPayrollSQL + ` RETURNING payroll_id`

	err := q.QueryRow(ctx, query,
		period.EmployeeID, period.TotalEarnings, period.TotalDeductions, period.NetSalary, period.PayrollDate,
	).Scan(&period.ID)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("%w: payroll: %w", database.ErrInsert, err)
	}
	return period, nil
}

// ========== READS ==========

// GetLatestPayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetLatestPayslip(ctx context.Context, employeeID int64) (payroll.PayslipDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.payslip_id, p.reference, p.payslip_date,
			   e.employee_id, e.first_name, e.last_name, e.email, e.job_title, d.department_name,
			   s.basic_salary, s.gross_salary, s.net_salary,
			   pr.payroll_id, pr.payroll_date, pr.total_earnings, pr.total_deductions, pr.net_salary
		FROM payslips p
		JOIN employees e ON p.employee_id = e.employee_id
		JOIN payroll pr ON p.payroll_id = pr.payroll_id
		JOIN LATERAL (
			SELECT basic_salary, gross_salary, net_salary
			FROM salaries
			WHERE employee_id = e.employee_id
			ORDER BY salary_id DESC
			LIMIT 1
		) s ON true
		LEFT JOIN departments d ON e.department_id = d.department_id
		WHERE p.employee_id = $1
		ORDER BY p.payslip_date DESC, p.payslip_id DESC
		LIMIT 1
	`

	var d payroll.PayslipDetail
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&d.PayslipID, &d.Reference, &d.PayslipDate,
		&d.EmployeeID, &d.FirstName, &d.LastName, &d.Email, &d.JobTitle, &d.DepartmentName,
		&d.BasicSalary, &d.GrossSalary, &d.NetSalary,
		&d.PayrollID, &d.PayrollDate, &d.TotalEarnings, &d.TotalDeductions, &d.PayrollNet,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayslipDetail{}, payroll.ErrPayslipNotFound
		}
		return payroll.PayslipDetail{}, fmt.Errorf("%w: failed to get payslip: %w", database.ErrQuery, err)
	}
	return d, nil
}

// GetHistory implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetHistory(ctx context.Context, employeeID int64) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payroll_id, employee_id, total_earnings, total_deductions, net_salary, payroll_date
		FROM payroll
		WHERE employee_id = $1
		ORDER BY payroll_date ASC, payroll_id ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get payroll history: %w", database.ErrQuery, err)
	}
	defer rows.Close()

	history := []payroll.PayrollPeriod{}
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.TotalEarnings, &p.TotalDeductions, &p.NetSalary, &p.PayrollDate); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		history = append(history, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to get payroll history: %w", database.ErrQuery, err)
	}
	return history, nil
}
