package http

import (
	"bytes"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type PayrollHandler interface {
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	GetPayrollHistory(w http.ResponseWriter, r *http.Request)
	ExportPayrollHistory(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payslip, err := h.payrollService.GetPayslip(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"payslip": payslip})
}

// DownloadPayslip implements PayrollHandler
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Rendered into a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	filename, err := h.payrollService.WritePayslipPDF(r.Context(), employeeID, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, pdfContentType, filename, &buf)
}

// GetPayrollHistory implements PayrollHandler
func (h *payrollHandlerImpl) GetPayrollHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := h.payrollService.GetPayrollHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"payrollHistory": history})
}

// ExportPayrollHistory implements PayrollHandler
func (h *payrollHandlerImpl) ExportPayrollHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	filename, err := h.payrollService.WritePayrollHistoryWorkbook(r.Context(), employeeID, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, xlsxContentType, filename, &buf)
}
