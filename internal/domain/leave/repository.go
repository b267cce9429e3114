package leave

import "context"

// LeaveRequestRepository - interface for leave_management table
type LeaveRequestRepository interface {
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	UpdateDecision(ctx context.Context, decision Decision) error

	// RejectPending applies decision only while the row is still Pending and
	// returns the number of rows changed.
	RejectPending(ctx context.Context, decision Decision) (int64, error)
}
