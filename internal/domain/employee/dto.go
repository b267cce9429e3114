package employee

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxDepartmentID is the largest id a JSON number carries exactly.
const maxDepartmentID = 1 << 53

// OnboardEmployeeRequest is the body of POST /addEmployee. Numeric fields are
// pointers so an absent value can be told apart from zero.
type OnboardEmployeeRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	ContactNumber string   `json:"contact_number"`
	DateOfBirth   string   `json:"date_of_birth"`
	JobTitle      string   `json:"job_title"`
	Gender        string   `json:"gender"`
	Address       string   `json:"address"`
	DepartmentID  *float64 `json:"department_id"`
	Salary        *float64 `json:"salary"`
	HireDate      string   `json:"hire_date"`
	Status        string   `json:"status"`
	Password      string   `json:"password,omitempty"`

	OvertimeHours    *float64 `json:"overtime_hours,omitempty"`
	BonusPercentage  *float64 `json:"bonus_percentage,omitempty"`
	UnpaidLeaveDays  *float64 `json:"unpaid_leave_days,omitempty"`
	TotalWorkingDays *float64 `json:"total_working_days,omitempty"`

	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`

	LeaveType  string `json:"leave_type,omitempty"`
	LeaveStart string `json:"leave_start,omitempty"`
	LeaveEnd   string `json:"leave_end,omitempty"`

	RoleName string `json:"role_name,omitempty"`

	GradeName     string   `json:"grade_name,omitempty"`
	MinimumSalary *float64 `json:"minimum_salary,omitempty"`
	MaximumSalary *float64 `json:"maximum_salary,omitempty"`

	AllowanceName   string   `json:"allowance_name,omitempty"`
	AllowanceAmount *float64 `json:"allowance_amount,omitempty"`
}

// DecodeOnboardEmployeeRequest reads the request body. A JSON value of the
// wrong type is reported as a validation error on that field.
func DecodeOnboardEmployeeRequest(r io.Reader) (OnboardEmployeeRequest, error) {
	var req OnboardEmployeeRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, validator.ValidationErrors{{
				Field:   typeErr.Field,
				Message: typeMessage(typeErr.Type),
			}}
		}
		return req, validator.ValidationErrors{{
			Field:   "body",
			Message: "request body must be a valid JSON object",
		}}
	}
	return req, nil
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	default:
		return "has an invalid type"
	}
}

func (r *OnboardEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"contact_number", r.ContactNumber},
		{"date_of_birth", r.DateOfBirth},
		{"job_title", r.JobTitle},
		{"gender", r.Gender},
		{"address", r.Address},
		{"hire_date", r.HireDate},
		{"status", r.Status},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if r.DepartmentID == nil {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	} else if *r.DepartmentID < 0 || *r.DepartmentID != math.Trunc(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id must be a non-negative integer"})
	} else if *r.DepartmentID > maxDepartmentID {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is out of range"})
	}

	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	}

	numbers := []struct {
		field string
		value *float64
	}{
		{"salary", r.Salary},
		{"overtime_hours", r.OvertimeHours},
		{"bonus_percentage", r.BonusPercentage},
		{"unpaid_leave_days", r.UnpaidLeaveDays},
		{"total_working_days", r.TotalWorkingDays},
		{"minimum_salary", r.MinimumSalary},
		{"maximum_salary", r.MaximumSalary},
		{"allowance_amount", r.AllowanceAmount},
	}
	for _, n := range numbers {
		if n.value != nil && *n.value < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   n.field,
				Message: n.field + " must be greater than or equal to 0",
			})
		}
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	dates := []struct {
		field string
		value string
	}{
		{"date_of_birth", r.DateOfBirth},
		{"hire_date", r.HireDate},
		{"leave_start", r.LeaveStart},
		{"leave_end", r.LeaveEnd},
	}
	for _, d := range dates {
		if validator.IsEmpty(d.value) {
			continue
		}
		if _, ok := validator.IsValidDate(d.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   d.field,
				Message: d.field + " must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if start, ok := validator.IsValidDate(r.LeaveStart); ok {
		if end, ok := validator.IsValidDate(r.LeaveEnd); ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "leave_end", Message: "leave_end must not be before leave_start"})
		}
	}

	if r.MinimumSalary != nil && r.MaximumSalary != nil && *r.MinimumSalary > *r.MaximumSalary {
		errs = append(errs, validator.ValidationError{Field: "maximum_salary", Message: "maximum_salary must not be less than minimum_salary"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee maps a validated request to the employee row.
func (r *OnboardEmployeeRequest) ToEmployee(passwordHash *string) Employee {
	e := Employee{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		DateOfBirth:   mustDate(r.DateOfBirth),
		JobTitle:      r.JobTitle,
		Gender:        r.Gender,
		Address:       r.Address,
		DepartmentID:  int64(valueOf(r.DepartmentID)),
		Salary:        decimalOf(r.Salary),
		HireDate:      mustDate(r.HireDate),
		Status:        r.Status,
		PasswordHash:  passwordHash,
	}
	if r.GradeName != "" {
		grade := r.GradeName
		e.GradeName = &grade
	}
	return e
}

func (r *OnboardEmployeeRequest) ComputeInput() payroll.ComputeInput {
	return payroll.ComputeInput{
		BasicSalary:      decimalOf(r.Salary),
		OvertimeHours:    decimalOf(r.OvertimeHours),
		BonusPercentage:  decimalOf(r.BonusPercentage),
		UnpaidLeaveDays:  decimalOf(r.UnpaidLeaveDays),
		TotalWorkingDays: decimalOf(r.TotalWorkingDays),
	}
}

func (r *OnboardEmployeeRequest) OnboardingInput(employeeID int64, today time.Time, reference uuid.UUID) payroll.OnboardingInput {
	in := payroll.OnboardingInput{
		EmployeeID:       employeeID,
		JobTitle:         r.JobTitle,
		RoleName:         r.RoleName,
		OvertimeHours:    decimalOf(r.OvertimeHours),
		UnpaidLeaveDays:  decimalOf(r.UnpaidLeaveDays),
		BankName:         r.BankName,
		AccountNumber:    r.AccountNumber,
		IFSCCode:         r.IFSCCode,
		LeaveType:        r.LeaveType,
		AllowanceName:    r.AllowanceName,
		AllowanceAmount:  decimalOf(r.AllowanceAmount),
		GradeName:        r.GradeName,
		Today:            today,
		PayslipReference: reference,
	}
	if start, ok := validator.IsValidDate(r.LeaveStart); ok {
		in.LeaveStart = &start
	}
	if end, ok := validator.IsValidDate(r.LeaveEnd); ok {
		in.LeaveEnd = &end
	}
	if r.MinimumSalary != nil {
		v := decimal.NewFromFloat(*r.MinimumSalary)
		in.MinimumSalary = &v
	}
	if r.MaximumSalary != nil {
		v := decimal.NewFromFloat(*r.MaximumSalary)
		in.MaximumSalary = &v
	}
	return in
}

type OnboardEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employeeId"`
}

type EmployeeResponse struct {
	EmployeeID     int64           `json:"employee_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	ContactNumber  string          `json:"contact_number"`
	DateOfBirth    string          `json:"date_of_birth"`
	JobTitle       string          `json:"job_title"`
	Gender         string          `json:"gender"`
	Address        string          `json:"address"`
	DepartmentID   int64           `json:"department_id"`
	DepartmentName *string         `json:"department_name"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       string          `json:"hire_date"`
	Status         string          `json:"status"`
	GradeName      *string         `json:"grade_name,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		ContactNumber:  e.ContactNumber,
		DateOfBirth:    e.DateOfBirth.Format("2006-01-02"),
		JobTitle:       e.JobTitle,
		Gender:         e.Gender,
		Address:        e.Address,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Salary:         e.Salary,
		HireDate:       e.HireDate.Format("2006-01-02"),
		Status:         e.Status,
		GradeName:      e.GradeName,
	}
}

// DataCheckResponse maps a table name to true/false, or to {"error": ...}
// when the probe for that table failed.
type DataCheckResponse map[string]any

type DataCheckError struct {
	Error string `json:"error"`
}

func NewDataCheckResponse(checks []DataCheck) DataCheckResponse {
	resp := make(DataCheckResponse, len(checks))
	for _, c := range checks {
		if c.Err != nil {
			resp[c.Table] = DataCheckError{Error: c.Err.Error()}
			continue
		}
		resp[c.Table] = c.Exists
	}
	return resp
}

func mustDate(s string) time.Time {
	t, _ := validator.IsValidDate(s)
	return t
}

func valueOf(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func decimalOf(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}
