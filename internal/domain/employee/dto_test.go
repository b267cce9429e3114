package employee

import (
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func validRequest() OnboardEmployeeRequest {
	return OnboardEmployeeRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		ContactNumber: "555-0100",
		DateOfBirth:   "1990-12-10",
		JobTitle:      "Engineer",
		Gender:        "Female",
		Address:       "12 Analytical St",
		DepartmentID:  float(2),
		Salary:        float(50000),
		HireDate:      "2024-06-01",
		Status:        "Active",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.ToMap()
}

// ===== DECODE TESTS =====

func TestDecodeOnboardEmployeeRequest_Success(t *testing.T) {
	body := `{"first_name":"Ada","salary":50000,"overtime_hours":10,"leave_start":"2024-06-10"}`

	req, err := DecodeOnboardEmployeeRequest(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, "Ada", req.FirstName)
	require.NotNil(t, req.Salary)
	assert.Equal(t, 50000.0, *req.Salary)
	assert.Equal(t, "2024-06-10", req.LeaveStart)
}

func TestDecodeOnboardEmployeeRequest_WrongType(t *testing.T) {
	_, err := DecodeOnboardEmployeeRequest(strings.NewReader(`{"salary":"lots"}`))

	fields := fieldsOf(t, err)
	assert.Equal(t, "must be a number", fields["salary"])
}

func TestDecodeOnboardEmployeeRequest_Malformed(t *testing.T) {
	_, err := DecodeOnboardEmployeeRequest(strings.NewReader(`{"first_name":`))

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "body")
}

// ===== VALIDATE TESTS =====

func TestOnboardEmployeeRequest_Validate_Success(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestOnboardEmployeeRequest_Validate_ZeroSalaryAllowed(t *testing.T) {
	req := validRequest()
	req.Salary = float(0)
	assert.NoError(t, req.Validate())
}

func TestOnboardEmployeeRequest_Validate_MissingFields(t *testing.T) {
	req := OnboardEmployeeRequest{}

	fields := fieldsOf(t, req.Validate())

	for _, f := range []string{
		"first_name", "last_name", "email", "contact_number", "date_of_birth",
		"job_title", "gender", "address", "hire_date", "status", "department_id", "salary",
	} {
		assert.Contains(t, fields, f)
	}
}

func TestOnboardEmployeeRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *OnboardEmployeeRequest)
		field  string
	}{
		{"bad email", func(r *OnboardEmployeeRequest) { r.Email = "ada@" }, "email"},
		{"negative salary", func(r *OnboardEmployeeRequest) { r.Salary = float(-1) }, "salary"},
		{"fractional department", func(r *OnboardEmployeeRequest) { r.DepartmentID = float(1.5) }, "department_id"},
		{"huge department", func(r *OnboardEmployeeRequest) { r.DepartmentID = float(1e300) }, "department_id"},
		{"department past exact range", func(r *OnboardEmployeeRequest) { r.DepartmentID = float(1<<53 + 2) }, "department_id"},
		{"negative overtime", func(r *OnboardEmployeeRequest) { r.OvertimeHours = float(-2) }, "overtime_hours"},
		{"bad hire date", func(r *OnboardEmployeeRequest) { r.HireDate = "01/06/2024" }, "hire_date"},
		{"leave end before start", func(r *OnboardEmployeeRequest) {
			r.LeaveType, r.LeaveStart, r.LeaveEnd = "Annual", "2024-06-12", "2024-06-10"
		}, "leave_end"},
		{"grade bounds inverted", func(r *OnboardEmployeeRequest) {
			r.GradeName, r.MinimumSalary, r.MaximumSalary = "G1", float(500), float(100)
		}, "maximum_salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			fields := fieldsOf(t, req.Validate())
			assert.Contains(t, fields, tt.field)
		})
	}
}

// ===== MAPPING TESTS =====

func TestOnboardEmployeeRequest_ToEmployee(t *testing.T) {
	req := validRequest()
	req.GradeName = "G2"
	hash := "hashed"

	e := req.ToEmployee(&hash)

	assert.Equal(t, int64(2), e.DepartmentID)
	assert.Equal(t, "50000", e.Salary.String())
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), e.HireDate)
	require.NotNil(t, e.GradeName)
	assert.Equal(t, "G2", *e.GradeName)
	assert.Equal(t, &hash, e.PasswordHash)
}

func TestOnboardEmployeeRequest_OnboardingInput(t *testing.T) {
	req := validRequest()
	req.LeaveType, req.LeaveStart, req.LeaveEnd = "Annual", "2024-06-10", "2024-06-12"
	req.MinimumSalary = float(1000)
	ref := uuid.New()
	today := time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC)

	in := req.OnboardingInput(11, today, ref)

	assert.Equal(t, int64(11), in.EmployeeID)
	assert.Equal(t, ref, in.PayslipReference)
	require.NotNil(t, in.LeaveStart)
	require.NotNil(t, in.LeaveEnd)
	assert.Equal(t, 12, in.LeaveEnd.Day())
	require.NotNil(t, in.MinimumSalary)
	assert.Nil(t, in.MaximumSalary)
}
