package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	AddEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CheckEmployeeData(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// AddEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	req, err := employee.DecodeOnboardEmployeeRequest(r.Body)
	if err != nil {
		slog.Error("AddEmployee decode error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp, err := h.employeeService.Onboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, resp)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"employees": employees})
}

// CheckEmployeeData implements EmployeeHandler
func (h *employeeHandlerImpl) CheckEmployeeData(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.employeeService.CheckEmployeeData(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, report)
}
