package document

import (
	"bytes"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func payslipDetail() payroll.PayslipDetail {
	dept := "Engineering"
	return payroll.PayslipDetail{
		PayslipID:       3,
		Reference:       uuid.MustParse("6f1c1f0e-8a4e-4c2b-9d7a-2f4b5e6a7c80"),
		PayslipDate:     time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC),
		EmployeeID:      42,
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "grace@example.com",
		JobTitle:        "Engineer",
		DepartmentName:  &dept,
		BasicSalary:     decimal.NewFromInt(50000),
		GrossSalary:     decimal.RequireFromString("57187.5"),
		NetSalary:       decimal.RequireFromString("51168.75"),
		PayrollID:       11,
		PayrollDate:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		TotalEarnings:   decimal.RequireFromString("57187.5"),
		TotalDeductions: decimal.RequireFromString("6018.75"),
		PayrollNet:      decimal.RequireFromString("51168.75"),
	}
}

func TestWritePayslipPDF(t *testing.T) {
	var buf bytes.Buffer

	err := WritePayslipPDF(&buf, payslipDetail())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePayslipPDF_WithoutDepartment(t *testing.T) {
	d := payslipDetail()
	d.DepartmentName = nil
	var buf bytes.Buffer

	require.NoError(t, WritePayslipPDF(&buf, d))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPayslipFilename(t *testing.T) {
	assert.Equal(t, "payslip_42_2024_06.pdf", PayslipFilename(payslipDetail()))
}

func TestWritePayrollHistoryWorkbook(t *testing.T) {
	// Arrange
	history := []payroll.PayrollPeriod{
		{ID: 1, EmployeeID: 42, TotalEarnings: decimal.NewFromInt(1000), TotalDeductions: decimal.NewFromInt(100), NetSalary: decimal.NewFromInt(900), PayrollDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, EmployeeID: 42, TotalEarnings: decimal.NewFromInt(1200), TotalDeductions: decimal.NewFromInt(150), NetSalary: decimal.NewFromInt(1050), PayrollDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	var buf bytes.Buffer

	// Act
	err := WritePayrollHistoryWorkbook(&buf, history)

	// Assert
	require.NoError(t, err)
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Payroll History"}, f.GetSheetList())
	rows, err := f.GetRows("Payroll History")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, historyHeaders, rows[0])
	assert.Equal(t, []string{"1", "2024-05-01", "1000", "100", "900"}, rows[1])
	assert.Equal(t, []string{"2", "2024-06-01", "1200", "150", "1050"}, rows[2])
}

func TestWritePayrollHistoryWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePayrollHistoryWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Payroll History")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPayrollHistoryFilename(t *testing.T) {
	assert.Equal(t, "payroll_history_42.xlsx", PayrollHistoryFilename(42))
}
