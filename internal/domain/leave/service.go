package leave

import "context"

type LeaveService interface {
	ApproveLeaveRequest(ctx context.Context, leaveID int64, req DecisionRequest) error
	RejectLeaveRequest(ctx context.Context, leaveID int64, req DecisionRequest) error
	ListLeaveRequests(ctx context.Context) ([]LeaveRequestResponse, error)
}
