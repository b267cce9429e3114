package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeLeaveRepo struct {
	request    leave.LeaveRequest
	getErr     error
	decisions  []leave.Decision
	rejected   int64
	rejectErr  error
	list       []leave.LeaveRequest
	lockedByID []int64
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	f.lockedByID = append(f.lockedByID, id)
	return f.request, f.getErr
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	return f.request, f.getErr
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return f.list, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, d leave.Decision) error {
	f.decisions = append(f.decisions, d)
	return nil
}

func (f *fakeLeaveRepo) RejectPending(ctx context.Context, d leave.Decision) (int64, error) {
	f.decisions = append(f.decisions, d)
	return f.rejected, f.rejectErr
}

type deduction struct {
	employeeID int64
	periodDate time.Time
	amount     decimal.Decimal
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	snapshot    payroll.SalarySnapshot
	snapshotErr error
	adjustments []payroll.AttendanceAdjustment
	deductions  []deduction
	patched     int64
	periods     []payroll.PayrollPeriod
}

func (f *fakePayrollRepo) GetSalarySnapshot(ctx context.Context, employeeID int64) (payroll.SalarySnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakePayrollRepo) CreateAttendanceAdjustments(ctx context.Context, rows []payroll.AttendanceAdjustment) error {
	f.adjustments = append(f.adjustments, rows...)
	return nil
}

func (f *fakePayrollRepo) ApplyLeaveDeduction(ctx context.Context, employeeID int64, periodDate time.Time, amount decimal.Decimal) (int64, error) {
	f.deductions = append(f.deductions, deduction{employeeID, periodDate, amount})
	return f.patched, nil
}

func (f *fakePayrollRepo) CreatePeriod(ctx context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	p.ID = int64(len(f.periods) + 100)
	f.periods = append(f.periods, p)
	return p, nil
}

var fixedNow = time.Date(2024, time.June, 17, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pendingRequest() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         9,
		EmployeeID: 5,
		LeaveType:  "Annual",
		LeaveStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		LeaveEnd:   time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
}

func snapshot() payroll.SalarySnapshot {
	return payroll.SalarySnapshot{
		ID:          1,
		EmployeeID:  5,
		BasicSalary: dec("30000"),
		GrossSalary: dec("33000"),
		NetSalary:   dec("29000"),
	}
}

func newTestService(tx *fakeTransactor, leaves *fakeLeaveRepo, payrolls *fakePayrollRepo) *LeaveServiceImpl {
	svc := NewLeaveService(tx, leaves, payrolls, payroll.NewCalculator(payroll.DefaultConfig())).(*LeaveServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// ===== APPROVE TESTS =====

func TestLeaveService_Approve_PatchesCurrentPeriod(t *testing.T) {
	// Arrange
	tx := &fakeTransactor{}
	leaves := &fakeLeaveRepo{request: pendingRequest()}
	payrolls := &fakePayrollRepo{snapshot: snapshot(), patched: 1}
	svc := newTestService(tx, leaves, payrolls)
	notes := "enjoy"

	// Act
	err := svc.ApproveLeaveRequest(context.Background(), 9, leave.DecisionRequest{Notes: &notes, ApprovedBy: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []int64{9}, leaves.lockedByID)

	require.Len(t, leaves.decisions, 1)
	d := leaves.decisions[0]
	assert.Equal(t, leave.StatusApproved, d.Status)
	assert.Equal(t, int64(1), d.ApprovedBy)
	assert.Equal(t, &notes, d.Notes)
	assert.Equal(t, fixedNow, d.ApprovalDate)

	require.Len(t, payrolls.adjustments, 3)
	for i, a := range payrolls.adjustments {
		assert.Equal(t, int64(5), a.EmployeeID)
		assert.Equal(t, time.Date(2024, time.June, 10+i, 0, 0, 0, 0, time.UTC), a.AttendanceDate)
		assert.True(t, dec("1").Equal(a.UnpaidLeaveDays))
		assert.True(t, dec("1000").Equal(a.SalaryAdjustment))
		assert.Nil(t, a.ClockInTime)
	}

	require.Len(t, payrolls.deductions, 1)
	assert.Equal(t, int64(5), payrolls.deductions[0].employeeID)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), payrolls.deductions[0].periodDate)
	assert.True(t, dec("3000").Equal(payrolls.deductions[0].amount))
	assert.Empty(t, payrolls.periods)
}

func TestLeaveService_Approve_CreatesMissingPeriod(t *testing.T) {
	// Arrange
	leaves := &fakeLeaveRepo{request: pendingRequest()}
	payrolls := &fakePayrollRepo{snapshot: snapshot(), patched: 0}
	svc := newTestService(&fakeTransactor{}, leaves, payrolls)

	// Act
	err := svc.ApproveLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 1})

	// Assert
	require.NoError(t, err)
	require.Len(t, payrolls.periods, 1)
	p := payrolls.periods[0]
	assert.Equal(t, int64(5), p.EmployeeID)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), p.PayrollDate)
	assert.True(t, dec("33000").Equal(p.TotalEarnings))
	assert.True(t, dec("7000").Equal(p.TotalDeductions))
	assert.True(t, dec("26000").Equal(p.NetSalary))
	assert.True(t, p.NetSalary.Equal(p.TotalEarnings.Sub(p.TotalDeductions)))
}

func TestLeaveService_Approve_AlreadyProcessed(t *testing.T) {
	req := pendingRequest()
	req.Status = leave.StatusRejected
	leaves := &fakeLeaveRepo{request: req}
	payrolls := &fakePayrollRepo{snapshot: snapshot()}
	svc := newTestService(&fakeTransactor{}, leaves, payrolls)

	err := svc.ApproveLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 1})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Empty(t, leaves.decisions)
	assert.Empty(t, payrolls.adjustments)
	assert.Empty(t, payrolls.deductions)
}

func TestLeaveService_Approve_NotFound(t *testing.T) {
	leaves := &fakeLeaveRepo{getErr: leave.ErrLeaveRequestNotFound}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{})

	err := svc.ApproveLeaveRequest(context.Background(), 404, leave.DecisionRequest{ApprovedBy: 1})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Approve_InvalidSpan(t *testing.T) {
	req := pendingRequest()
	req.LeaveEnd = req.LeaveStart.AddDate(0, 0, -1)
	leaves := &fakeLeaveRepo{request: req}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{snapshot: snapshot()})

	err := svc.ApproveLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 1})

	assert.ErrorIs(t, err, leave.ErrInvalidLeaveSpan)
	assert.Empty(t, leaves.decisions)
}

func TestLeaveService_Approve_MissingSalary(t *testing.T) {
	leaves := &fakeLeaveRepo{request: pendingRequest()}
	payrolls := &fakePayrollRepo{snapshotErr: payroll.ErrSalaryNotFound}
	svc := newTestService(&fakeTransactor{}, leaves, payrolls)

	err := svc.ApproveLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 1})

	assert.ErrorIs(t, err, payroll.ErrSalaryNotFound)
	assert.Empty(t, payrolls.adjustments)
}

// ===== REJECT TESTS =====

func TestLeaveService_Reject_Success(t *testing.T) {
	leaves := &fakeLeaveRepo{rejected: 1}
	payrolls := &fakePayrollRepo{}
	svc := newTestService(&fakeTransactor{}, leaves, payrolls)

	err := svc.RejectLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 2})

	require.NoError(t, err)
	require.Len(t, leaves.decisions, 1)
	assert.Equal(t, leave.StatusRejected, leaves.decisions[0].Status)
	assert.Equal(t, int64(2), leaves.decisions[0].ApprovedBy)
	assert.Empty(t, payrolls.adjustments)
	assert.Empty(t, payrolls.deductions)
}

func TestLeaveService_Reject_AlreadyProcessed(t *testing.T) {
	req := pendingRequest()
	req.Status = leave.StatusApproved
	leaves := &fakeLeaveRepo{rejected: 0, request: req}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{})

	err := svc.RejectLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 2})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_Reject_NotFound(t *testing.T) {
	leaves := &fakeLeaveRepo{rejected: 0, getErr: leave.ErrLeaveRequestNotFound}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{})

	err := svc.RejectLeaveRequest(context.Background(), 404, leave.DecisionRequest{ApprovedBy: 2})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Reject_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	leaves := &fakeLeaveRepo{rejectErr: storeErr}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{})

	err := svc.RejectLeaveRequest(context.Background(), 9, leave.DecisionRequest{ApprovedBy: 2})

	assert.ErrorIs(t, err, storeErr)
}

// ===== LIST TESTS =====

func TestLeaveService_ListLeaveRequests(t *testing.T) {
	name := "Ada Lovelace"
	approvedAt := fixedNow
	approved := pendingRequest()
	approved.Status = leave.StatusApproved
	approved.ApprovalDate = &approvedAt
	approved.EmployeeName = &name
	leaves := &fakeLeaveRepo{list: []leave.LeaveRequest{approved, pendingRequest()}}
	svc := newTestService(&fakeTransactor{}, leaves, &fakePayrollRepo{})

	resp, err := svc.ListLeaveRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2024-06-10", resp[0].LeaveStart)
	assert.Equal(t, &name, resp[0].EmployeeName)
	require.NotNil(t, resp[0].ApprovalDate)
	assert.Equal(t, "2024-06-17", *resp[0].ApprovalDate)
	assert.Nil(t, resp[1].ApprovalDate)
}
