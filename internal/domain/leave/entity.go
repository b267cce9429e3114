package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest - a span of leave days. Pending moves to Approved or Rejected
// and never changes again.
type LeaveRequest struct {
	ID            int64
	EmployeeID    int64
	LeaveType     string
	LeaveStart    time.Time
	LeaveEnd      time.Time
	Status        Status
	ApprovalNotes *string
	ApprovedBy    *int64
	ApprovalDate  *time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentName *string
}

func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// Days counts calendar days in the span, both ends included.
func (l LeaveRequest) Days() int {
	start := dateOnly(l.LeaveStart)
	end := dateOnly(l.LeaveEnd)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Dates lists every calendar day in the span, in order.
func (l LeaveRequest) Dates() []time.Time {
	days := l.Days()
	dates := make([]time.Time, 0, days)
	start := dateOnly(l.LeaveStart)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// Decision is the status change written by an approval or rejection.
type Decision struct {
	LeaveID      int64
	Status       Status
	Notes        *string
	ApprovedBy   int64
	ApprovalDate time.Time
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
