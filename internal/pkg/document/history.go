package document

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const historySheet = "Payroll History"

var historyHeaders = []string{"Payroll ID", "Payroll Date", "Total Earnings", "Total Deductions", "Net Salary"}

// WritePayrollHistoryWorkbook writes history as a single-sheet xlsx workbook,
// one row per payroll period in the given order.
func WritePayrollHistoryWorkbook(w io.Writer, history []payroll.PayrollPeriod) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(historySheet, cell, header); err != nil {
			return err
		}
	}

	for i, p := range history {
		row := i + 2
		earnings, _ := p.TotalEarnings.Float64()
		deductions, _ := p.TotalDeductions.Float64()
		net, _ := p.NetSalary.Float64()

		values := []any{p.ID, p.PayrollDate.Format(dateLayout), earnings, deductions, net}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(historySheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// PayrollHistoryFilename names the export for employeeID.
func PayrollHistoryFilename(employeeID int64) string {
	return fmt.Sprintf("payroll_history_%d.xlsx", employeeID)
}
