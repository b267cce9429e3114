package record

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindInteger
	KindDate
)

type Field struct {
	Name string
	Kind FieldKind
}

// DerivedColumn is written on insert with the value of another field.
type DerivedColumn struct {
	Column string
	From   string
}

// Table describes one table reachable through the generic accessors. Every
// identifier here ends up in SQL text, so entries are fixed at compile time.
type Table struct {
	Name       string
	SQLName    string
	PrimaryKey string
	OrderBy    string

	// EmployeeFilter is a WHERE clause with $1 bound to an employee id.
	EmployeeFilter string

	Readable  bool
	Deletable bool

	// Insertable fields are all required on insert.
	Insertable []Field
	Derived    []DerivedColumn
	Updatable  []Field

	// Check runs after per-field coercion on insert.
	Check func(values map[string]any) validator.ValidationErrors
}

func (t Table) CanInsert() bool { return len(t.Insertable) > 0 }
func (t Table) CanUpdate() bool { return len(t.Updatable) > 0 }

func (t Table) UpdatableField(name string) (Field, bool) {
	for _, f := range t.Updatable {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

const byEmployee = "employee_id = $1"

var tables = map[string]Table{
	"Employees": {
		Name: "Employees", SQLName: "employees", PrimaryKey: "employee_id", OrderBy: "employee_id",
		EmployeeFilter: byEmployee, Readable: true, Deletable: true,
		Updatable: []Field{
			{"first_name", KindText}, {"last_name", KindText}, {"email", KindText},
			{"contact_number", KindText}, {"date_of_birth", KindDate}, {"job_title", KindText},
			{"gender", KindText}, {"address", KindText}, {"department_id", KindInteger},
			{"salary", KindNumber}, {"hire_date", KindDate}, {"status", KindText},
			{"grade_name", KindText},
		},
	},
	"Salaries": {
		Name: "Salaries", SQLName: "salaries", PrimaryKey: "salary_id", OrderBy: "salary_id",
		EmployeeFilter: byEmployee, Readable: true, Deletable: true,
		Updatable: []Field{
			{"basic_salary", KindNumber}, {"gross_salary", KindNumber}, {"net_salary", KindNumber},
		},
	},
	"Payroll": {
		Name: "Payroll", SQLName: "payroll", PrimaryKey: "payroll_id", OrderBy: "payroll_date",
		EmployeeFilter: byEmployee, Readable: true, Deletable: true,
		Insertable: []Field{
			{"total_earnings", KindNumber}, {"total_deductions", KindNumber},
			{"net_salary", KindNumber}, {"payroll_date", KindDate},
		},
		Updatable: []Field{
			{"total_earnings", KindNumber}, {"total_deductions", KindNumber},
			{"net_salary", KindNumber}, {"payroll_date", KindDate},
		},
		Check: checkPayrollTotals,
	},
	"Taxation": {
		Name: "Taxation", SQLName: "taxation", PrimaryKey: "tax_id", OrderBy: "tax_year",
		EmployeeFilter: byEmployee, Readable: true,
	},
	"Deductions": {
		Name: "Deductions", SQLName: "deductions", PrimaryKey: "deduction_id", OrderBy: "deduction_id",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{
			{"tax", KindNumber}, {"insurance", KindNumber}, {"loan_repayment", KindNumber},
			{"total_deductions", KindNumber}, {"deduction_name", KindText},
		},
		Derived: []DerivedColumn{{Column: "amount", From: "total_deductions"}},
	},
	"Overtime": {
		Name: "Overtime", SQLName: "overtime", PrimaryKey: "overtime_id", OrderBy: "overtime_date",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{
			{"overtime_hours", KindNumber}, {"rate_per_hour", KindNumber}, {"overtime_pay", KindNumber},
			{"overtime_date", KindDate}, {"total_amount", KindNumber},
		},
	},
	"Bonuses": {
		Name: "Bonuses", SQLName: "bonuses", PrimaryKey: "bonus_id", OrderBy: "bonus_id",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{{"bonus_amount", KindNumber}, {"bonus_date", KindDate}},
		Derived:    []DerivedColumn{{Column: "amount", From: "bonus_amount"}},
	},
	"Attendance": {
		Name: "Attendance", SQLName: "attendance", PrimaryKey: "attendance_id", OrderBy: "attendance_date",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{
			{"unpaid_leave_days", KindNumber}, {"salary_adjustment", KindNumber}, {"attendance_date", KindDate},
		},
	},
	"BankDetails": {
		Name: "BankDetails", SQLName: "bank_details", PrimaryKey: "bank_detail_id", OrderBy: "bank_detail_id",
		EmployeeFilter: byEmployee, Readable: true,
	},
	"LeaveManagement": {
		Name: "LeaveManagement", SQLName: "leave_management", PrimaryKey: "leave_id", OrderBy: "leave_start",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{
			{"leave_type", KindText}, {"leave_start", KindDate}, {"leave_end", KindDate}, {"status", KindText},
		},
		Check: checkNewLeave,
	},
	"UserRoles": {
		Name: "UserRoles", SQLName: "user_roles", PrimaryKey: "role_id", OrderBy: "role_id",
		EmployeeFilter: byEmployee, Readable: true,
	},
	"SalaryGrades": {
		Name: "SalaryGrades", SQLName: "salary_grades", PrimaryKey: "grade_id", OrderBy: "grade_id",
		EmployeeFilter: "grade_name = (SELECT grade_name FROM employees WHERE employee_id = $1)",
		Readable:       true,
	},
	"Allowances": {
		Name: "Allowances", SQLName: "allowances", PrimaryKey: "allowance_id", OrderBy: "allowance_id",
		EmployeeFilter: byEmployee, Readable: true,
		Insertable: []Field{{"allowance_name", KindText}, {"amount", KindNumber}},
	},
	"PaySlips": {
		Name: "PaySlips", SQLName: "payslips", PrimaryKey: "payslip_id", OrderBy: "payslip_date",
		EmployeeFilter: "employee_id = $1 AND payroll_id IN (SELECT payroll_id FROM payroll WHERE employee_id = $1)",
	},
	"JobTitles": {
		Name: "JobTitles", SQLName: "job_titles", PrimaryKey: "job_title_id", OrderBy: "job_title_id",
		EmployeeFilter: "job_title_name = (SELECT job_title FROM employees WHERE employee_id = $1)",
	},
}

// checkedTables is the order of the per-employee data report.
var checkedTables = []string{
	"Employees", "Salaries", "Payroll", "Taxation", "Deductions",
	"Overtime", "Bonuses", "Attendance", "BankDetails", "LeaveManagement",
	"UserRoles", "SalaryGrades", "Allowances", "PaySlips", "JobTitles",
}

// Lookup returns the table registered under name.
func Lookup(name string) (Table, error) {
	t, ok := tables[name]
	if !ok {
		return Table{}, ErrInvalidTable
	}
	return t, nil
}

// CheckedTables returns the tables probed by the employee data check.
func CheckedTables() []Table {
	out := make([]Table, 0, len(checkedTables))
	for _, name := range checkedTables {
		out = append(out, tables[name])
	}
	return out
}

func checkPayrollTotals(values map[string]any) validator.ValidationErrors {
	earnings, _ := values["total_earnings"].(decimal.Decimal)
	deductions, _ := values["total_deductions"].(decimal.Decimal)
	net, _ := values["net_salary"].(decimal.Decimal)
	if !net.Equal(earnings.Sub(deductions)) {
		return validator.ValidationErrors{{
			Field:   "net_salary",
			Message: "net_salary must equal total_earnings minus total_deductions",
		}}
	}
	return nil
}

func checkNewLeave(values map[string]any) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if status, _ := values["status"].(string); leave.Status(status) != leave.StatusPending {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "new leave requests must have status Pending",
		})
	}
	start, _ := values["leave_start"].(time.Time)
	end, _ := values["leave_end"].(time.Time)
	if end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_end",
			Message: "leave_end must not be before leave_start",
		})
	}
	return errs
}
