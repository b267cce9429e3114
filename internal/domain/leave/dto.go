package leave

// DecisionRequest is the body of an approve or reject call. ApprovedBy is
// filled from the caller's identity, never from the body.
type DecisionRequest struct {
	Notes      *string `json:"notes"`
	ApprovedBy int64   `json:"-"`
}

type LeaveRequestResponse struct {
	LeaveID        int64   `json:"leave_id"`
	EmployeeID     int64   `json:"employee_id"`
	EmployeeName   *string `json:"employee_name"`
	DepartmentName *string `json:"department_name"`
	LeaveType      string  `json:"leave_type"`
	LeaveStart     string  `json:"leave_start"`
	LeaveEnd       string  `json:"leave_end"`
	Status         Status  `json:"status"`
	ApprovalNotes  *string `json:"approval_notes"`
	ApprovedBy     *int64  `json:"approved_by"`
	ApprovalDate   *string `json:"approval_date"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		LeaveID:        l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		DepartmentName: l.DepartmentName,
		LeaveType:      l.LeaveType,
		LeaveStart:     l.LeaveStart.Format("2006-01-02"),
		LeaveEnd:       l.LeaveEnd.Format("2006-01-02"),
		Status:         l.Status,
		ApprovalNotes:  l.ApprovalNotes,
		ApprovedBy:     l.ApprovedBy,
	}
	if l.ApprovalDate != nil {
		d := l.ApprovalDate.Format("2006-01-02")
		resp.ApprovalDate = &d
	}
	return resp
}
