package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/metrics"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct {
	tx          database.Transactor
	leaveRepo   leave.LeaveRequestRepository
	payrollRepo payroll.PayrollRepository
	calculator  *payroll.Calculator
	now         func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepo leave.LeaveRequestRepository,
	payrollRepo payroll.PayrollRepository,
	calculator *payroll.Calculator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:          tx,
		leaveRepo:   leaveRepo,
		payrollRepo: payrollRepo,
		calculator:  calculator,
		now:         time.Now,
	}
}

// ApproveLeaveRequest implements leave.LeaveService. The decision, the
// per-day attendance rows and the payroll patch commit together or not at all.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, leaveID int64, req leave.DecisionRequest) error {
	now := s.now()

	var (
		request leave.LeaveRequest
		total   decimal.Decimal
	)
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.leaveRepo.GetByIDForUpdate(txCtx, leaveID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		days := request.Days()
		if days == 0 {
			return leave.ErrInvalidLeaveSpan
		}

		if err := s.leaveRepo.UpdateDecision(txCtx, leave.Decision{
			LeaveID:      leaveID,
			Status:       leave.StatusApproved,
			Notes:        req.Notes,
			ApprovedBy:   req.ApprovedBy,
			ApprovalDate: now,
		}); err != nil {
			return err
		}

		salary, err := s.payrollRepo.GetSalarySnapshot(txCtx, request.EmployeeID)
		if err != nil {
			return err
		}

		var daily decimal.Decimal
		daily, total = s.calculator.LeaveAdjustment(salary.BasicSalary, days)

		adjustments := make([]payroll.AttendanceAdjustment, 0, days)
		for _, date := range request.Dates() {
			adjustments = append(adjustments, payroll.AttendanceAdjustment{
				EmployeeID:       request.EmployeeID,
				AttendanceDate:   date,
				UnpaidLeaveDays:  decimal.NewFromInt(1),
				SalaryAdjustment: daily,
			})
		}
		if err := s.payrollRepo.CreateAttendanceAdjustments(txCtx, adjustments); err != nil {
			return err
		}

		return s.applyToCurrentPeriod(txCtx, salary, payroll.PeriodStart(now), total)
	})
	metrics.ObserveLeaveDecision("approve", err)
	if err != nil {
		if !errors.Is(err, leave.ErrLeaveRequestNotFound) && !errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			slog.Error("leave approval failed", "leave_id", leaveID, "error", err)
		}
		return err
	}

	slog.Info("leave request approved",
		"leave_id", leaveID,
		"employee_id", request.EmployeeID,
		"approved_by", req.ApprovedBy,
		"days", request.Days(),
		"salary_adjustment", total.String(),
	)
	return nil
}

// applyToCurrentPeriod moves total from net to deductions on the period
// dated periodDate, creating that period from the salary snapshot when the
// employee has none yet.
func (s *LeaveServiceImpl) applyToCurrentPeriod(ctx context.Context, salary payroll.SalarySnapshot, periodDate time.Time, total decimal.Decimal) error {
	patched, err := s.payrollRepo.ApplyLeaveDeduction(ctx, salary.EmployeeID, periodDate, total)
	if err != nil {
		return err
	}
	if patched > 0 {
		return nil
	}

	period, err := s.payrollRepo.CreatePeriod(ctx, payroll.PayrollPeriod{
		EmployeeID:      salary.EmployeeID,
		TotalEarnings:   salary.GrossSalary,
		TotalDeductions: salary.GrossSalary.Sub(salary.NetSalary).Add(total),
		NetSalary:       salary.NetSalary.Sub(total),
		PayrollDate:     periodDate,
	})
	if err != nil {
		return err
	}
	slog.Info("payroll period created for leave adjustment",
		"employee_id", salary.EmployeeID,
		"payroll_id", period.ID,
		"payroll_date", periodDate.Format("2006-01-02"),
	)
	return nil
}

// RejectLeaveRequest implements leave.LeaveService. Rejection never touches
// payroll data.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, leaveID int64, req leave.DecisionRequest) error {
	changed, err := s.leaveRepo.RejectPending(ctx, leave.Decision{
		LeaveID:      leaveID,
		Status:       leave.StatusRejected,
		Notes:        req.Notes,
		ApprovedBy:   req.ApprovedBy,
		ApprovalDate: s.now(),
	})
	if err == nil && changed == 0 {
		// Tell an unknown id apart from one that was already decided.
		if _, err = s.leaveRepo.GetByID(ctx, leaveID); err == nil {
			err = leave.ErrLeaveRequestAlreadyProcessed
		}
	}
	metrics.ObserveLeaveDecision("reject", err)
	if err != nil {
		return err
	}

	slog.Info("leave request rejected", "leave_id", leaveID, "approved_by", req.ApprovedBy)
	return nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, leave.NewLeaveRequestResponse(r))
	}
	return resp, nil
}
