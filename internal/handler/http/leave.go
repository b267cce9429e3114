package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
)

const (
	approvedMessage = "Leave request approved successfully"
	rejectedMessage = "Leave request rejected successfully"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService

	// defaultApproverID is recorded when the request carries no employee token.
	defaultApproverID int64
}

func NewLeaveHandler(leaveService leave.LeaveService, defaultApproverID int64) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:      leaveService,
		defaultApproverID: defaultApproverID,
	}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"leaveRequests": requests})
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	leaveID, req, ok := l.decodeDecision(w, r, "ApproveRequest")
	if !ok {
		return
	}

	if err := l.leaveService.ApproveLeaveRequest(r.Context(), leaveID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]string{"message": approvedMessage})
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	leaveID, req, ok := l.decodeDecision(w, r, "RejectRequest")
	if !ok {
		return
	}

	if err := l.leaveService.RejectLeaveRequest(r.Context(), leaveID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]string{"message": rejectedMessage})
}

// decodeDecision reads the leave id and the optional notes body. It writes
// the error response itself and reports whether the caller should go on.
func (l *LeaveHandlerImpl) decodeDecision(w http.ResponseWriter, r *http.Request, op string) (int64, leave.DecisionRequest, bool) {
	leaveID, err := pathID(r, "leaveId")
	if err != nil {
		response.HandleError(w, err)
		return 0, leave.DecisionRequest{}, false
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return 0, leave.DecisionRequest{}, false
	}

	req.ApprovedBy = l.defaultApproverID
	if id, ok := jwt.EmployeeIDFromContext(r.Context()); ok {
		req.ApprovedBy = id
	}
	return leaveID, req, true
}
