package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidAdminCredentials),
		errors.Is(err, auth.ErrEmployeeNotFound),
		errors.Is(err, auth.ErrInvalidPassword):
		LoginFailed(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveSpan):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "No payslip found")

	// Record errors
	case errors.Is(err, record.ErrInvalidTable),
		errors.Is(err, record.ErrOperationNotAllowed),
		errors.Is(err, record.ErrNoUpdates):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, record.ErrRecordNotFound),
		errors.Is(err, record.ErrRecordsNotFound):
		NotFound(w, err.Error())

	// Store failures; a timeout is checked first since it wraps the cause
	case errors.Is(err, database.ErrTimeout):
		logStoreError(err)
		GatewayTimeout(w, database.ErrTimeout.Error(), err.Error())
	case errors.Is(err, database.ErrInsert):
		logStoreError(err)
		InternalServerError(w, database.ErrInsert.Error(), err.Error())
	case errors.Is(err, database.ErrUpdate):
		logStoreError(err)
		InternalServerError(w, database.ErrUpdate.Error(), err.Error())
	case errors.Is(err, database.ErrDelete):
		logStoreError(err)
		InternalServerError(w, database.ErrDelete.Error(), err.Error())
	case errors.Is(err, database.ErrCommit),
		errors.Is(err, database.ErrBeginTx),
		errors.Is(err, database.ErrQuery):
		logStoreError(err)
		InternalServerError(w, "Database error", err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred", nil)
	}
}

func logStoreError(err error) {
	slog.Error("store operation failed", "error", err)
}
