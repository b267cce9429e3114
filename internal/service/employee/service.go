package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/metrics"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	onboardedMessage = "Employee added successfully with full payroll processing!"

	// dataCheckConcurrency caps the existence probes in flight for one report.
	dataCheckConcurrency = 4
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
	payrollRepo  payroll.PayrollRepository
	recordRepo   record.RecordRepository
	calculator   *payroll.Calculator
	now          func() time.Time
	newReference func() uuid.UUID
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
	recordRepo record.RecordRepository,
	calculator *payroll.Calculator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		recordRepo:   recordRepo,
		calculator:   calculator,
		now:          time.Now,
		newReference: uuid.New,
	}
}

// Onboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Onboard(ctx context.Context, req employee.OnboardEmployeeRequest) (employee.OnboardEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.OnboardEmployeeResponse{}, err
	}

	var passwordHash *string
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.OnboardEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	breakdown := s.calculator.Compute(req.ComputeInput())
	today := s.now()
	reference := s.newReference()

	var (
		employeeID int64
		plan       payroll.OnboardingPlan
	)
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.employeeRepo.Create(txCtx, req.ToEmployee(passwordHash))
		if err != nil {
			return err
		}
		employeeID = id

		plan = payroll.BuildOnboardingPlan(req.OnboardingInput(id, today, reference), breakdown)
		return s.payrollRepo.ApplyOnboardingPlan(txCtx, plan)
	})
	metrics.ObserveOnboarding(err)
	if err != nil {
		slog.Error("employee onboarding failed", "email", req.Email, "error", err)
		return employee.OnboardEmployeeResponse{}, err
	}

	slog.Info("employee onboarded",
		"employee_id", employeeID,
		"tables", plan.Tables(),
		"gross_salary", breakdown.GrossSalary.String(),
		"net_salary", breakdown.NetSalary.String(),
	)

	return employee.OnboardEmployeeResponse{
		Message:    onboardedMessage,
		EmployeeID: employeeID,
	}, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employee.NewEmployeeResponse(e))
	}
	return resp, nil
}

// CheckEmployeeData implements employee.EmployeeService. A failed probe is
// reported for its table and does not fail the report.
func (s *EmployeeServiceImpl) CheckEmployeeData(ctx context.Context, employeeID int64) (employee.DataCheckResponse, error) {
	if employeeID <= 0 {
		return nil, employee.ErrInvalidEmployeeID
	}

	tables := record.CheckedTables()
	checks := make([]employee.DataCheck, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dataCheckConcurrency)
	for i, t := range tables {
		g.Go(func() error {
			exists, err := s.recordRepo.Exists(gctx, t, employeeID)
			if err != nil {
				slog.Warn("employee data check failed", "employee_id", employeeID, "table", t.Name, "error", err)
			}
			checks[i] = employee.DataCheck{Table: t.Name, Exists: exists, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return employee.NewDataCheckResponse(checks), nil
}
