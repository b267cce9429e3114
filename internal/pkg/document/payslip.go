package document

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// WritePayslipPDF renders a one-page payslip for d to w.
func WritePayslipPDF(w io.Writer, d payroll.PayslipDetail) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Reference: %s", d.Reference))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payslip date: %s", d.PayslipDate.Format(dateLayout)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (#%d)", d.FirstName, d.LastName, d.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", d.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Job title: %s", d.JobTitle))
	pdf.Ln(7)
	if d.DepartmentName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", *d.DepartmentName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", d.PayrollDate.Format("January 2006")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(100, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	lines := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Basic salary", d.BasicSalary},
		{"Gross salary", d.GrossSalary},
		{"Total earnings", d.TotalEarnings},
		{"Total deductions", d.TotalDeductions},
		{"Net pay", d.PayrollNet},
	}
	for _, l := range lines {
		pdf.CellFormat(100, 8, l.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, l.amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

// PayslipFilename names the download for d.
func PayslipFilename(d payroll.PayslipDetail) string {
	return fmt.Sprintf("payslip_%d_%s.pdf", d.EmployeeID, d.PayrollDate.Format("2006_01"))
}
