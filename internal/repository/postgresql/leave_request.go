package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const selectLeaveRequestSQL = `
	SELECT lm.leave_id, lm.employee_id, lm.leave_type, lm.leave_start, lm.leave_end,
		   lm.status, lm.approval_notes, lm.approved_by, lm.approval_date,
		   e.first_name || ' ' || e.last_name, d.department_name
	FROM leave_management lm
	JOIN employees e ON lm.employee_id = e.employee_id
	LEFT JOIN departments d ON e.department_id = d.department_id
`

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := selectLeaveRequestSQL + ` WHERE lm.leave_id = $1 FOR UPDATE OF lm`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("%w: failed to lock leave request: %w", database.ErrQuery, err)
	}
	return lr, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := selectLeaveRequestSQL + ` WHERE lm.leave_id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("%w: failed to get leave request: %w", database.ErrQuery, err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := selectLeaveRequestSQL + ` ORDER BY lm.leave_start DESC, lm.leave_id DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list leave requests: %w", database.ErrQuery, err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list leave requests: %w", database.ErrQuery, err)
	}
	return requests, nil
}

// UpdateDecision implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, decision leave.Decision) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_management
		SET status = $1, approval_notes = $2, approved_by = $3, approval_date = $4
		WHERE leave_id = $5
	`

	commandTag, err := q.Exec(ctx, query,
		string(decision.Status), decision.Notes, decision.ApprovedBy, decision.ApprovalDate, decision.LeaveID,
	)
	if err != nil {
		return fmt.Errorf("%w: leave_management: %w", database.ErrUpdate, err)
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// RejectPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) RejectPending(ctx context.Context, decision leave.Decision) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_management
		SET status = $1, approval_notes = $2, approved_by = $3, approval_date = $4
		WHERE leave_id = $5 AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		string(decision.Status), decision.Notes, decision.ApprovedBy, decision.ApprovalDate, decision.LeaveID,
		string(leave.StatusPending),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: leave_management: %w", database.ErrUpdate, err)
	}
	return commandTag.RowsAffected(), nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		lr     leave.LeaveRequest
		status string
	)
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.LeaveStart, &lr.LeaveEnd,
		&status, &lr.ApprovalNotes, &lr.ApprovedBy, &lr.ApprovalDate,
		&lr.EmployeeName, &lr.DepartmentName,
	)
	lr.Status = leave.Status(status)
	return lr, err
}
