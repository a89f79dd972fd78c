package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
	FindByStatus(ctx context.Context, status string) ([]employee.Employee, error)
}

type PeriodSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*payperiod.PayPeriod, error)
}

type Dependencies struct {
	Employees EmployeeSource
	Periods   PeriodSource
	// Outbox is optional; without it no run events are queued.
	Outbox kafka.OutboxRepository
	Audit  audit.Logger
	Now    func() time.Time
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ProcessEmployeePayroll(ctx context.Context, employeeID, periodID string) (ProcessEmployeeResponse, error)
	ProcessPayrollForPeriod(ctx context.Context, periodID string) (RunResult, error)
	RequestRun(ctx context.Context, periodID, requestedBy string) (RunRequestedResponse, error)
	Preview(ctx context.Context, employeeID, periodID string) (PayrollResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (PayrollResponse, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PayrollResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	PeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)
	Payslip(ctx context.Context, employeeID, periodID string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	calc   *Calculator
	deps   Dependencies
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, calc *Calculator, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if deps.Audit == nil {
		deps.Audit = audit.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{db: db, repo: repo, calc: calc, deps: deps, logger: l}
}

func (s *service) ProcessEmployeePayroll(ctx context.Context, employeeID, periodID string) (resp ProcessEmployeeResponse, err error) {
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "payroll",
			Action:    "PROCESS_EMPLOYEE",
			ActorID:   contextutil.GetEmployeeID(ctx),
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta: map[string]any{
				"employee_id":       employeeID,
				"pay_period_id":     periodID,
				"already_processed": resp.AlreadyProcessed,
			},
		})
	}()

	emp, period, err := s.load(ctx, employeeID, periodID)
	if err != nil {
		return ProcessEmployeeResponse{}, err
	}
	if emp.Status == employee.StatusTerminated {
		return ProcessEmployeeResponse{}, payrollerrors.ErrEmployeeTerminated
	}

	rec, already, err := s.process(ctx, *emp, *period)
	if err != nil {
		return ProcessEmployeeResponse{}, err
	}
	return ProcessEmployeeResponse{AlreadyProcessed: already, Payroll: mapToResponse(*rec)}, nil
}

// process is the idempotent unit of a run: an existing record for the pair is
// returned as is, otherwise one is computed and inserted if still absent.
func (s *service) process(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod) (*PayrollRecord, bool, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("employee_id", emp.ID.String()),
		zap.String("pay_period_id", period.ID.String()),
	)

	existing, err := s.repo.FindByEmployeeAndPeriod(ctx, emp.ID, period.ID)
	if err == nil {
		log.Debug("payroll already processed")
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("payroll existing lookup failed", zap.Error(err))
		return nil, false, err
	}

	rec, err := s.calc.Calculate(ctx, emp, period)
	if err != nil {
		log.Error("payroll calculation failed", zap.Error(err))
		return nil, false, err
	}
	rec.ID = uuid.New()
	rec.CreatedAt = s.deps.Now().UTC()

	created, err := s.repo.CreateIfAbsent(ctx, rec)
	if err != nil {
		log.Error("payroll persist failed", zap.Error(err))
		return nil, false, err
	}
	if !created {
		log.Info("payroll inserted concurrently, using existing record")
		existing, err := s.repo.FindByEmployeeAndPeriod(ctx, emp.ID, period.ID)
		if err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	log.Info("payroll processed",
		zap.String("gross_income", rec.GrossIncome.StringFixed(2)),
		zap.String("net_salary", rec.NetSalary.StringFixed(2)),
	)
	return rec, false, nil
}

func (s *service) ProcessPayrollForPeriod(ctx context.Context, periodID string) (result RunResult, err error) {
	log := contextutil.GetLogger(ctx, s.logger)
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "payroll",
			Action:    "PROCESS_PERIOD",
			ActorID:   contextutil.GetEmployeeID(ctx),
			Outcome:   runOutcome(result, err),
			Message:   result.Message,
			Meta: map[string]any{
				"pay_period_id": periodID,
				"processed":     result.Processed,
				"skipped":       result.Skipped,
				"failed":        result.Failed,
			},
		})
	}()

	period, err := s.period(ctx, periodID)
	if err != nil {
		return RunResult{}, err
	}

	roster, err := s.deps.Employees.FindByStatus(ctx, employee.StatusActive)
	if err != nil {
		log.Error("payroll run roster lookup failed", zap.String("pay_period_id", periodID), zap.Error(err))
		return RunResult{}, err
	}

	result = RunResult{PayPeriodID: period.ID.String(), Errors: []RunError{}}
	for _, emp := range roster {
		_, already, err := s.process(ctx, emp, *period)
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, RunError{
				EmployeeID: emp.ID.String(),
				Message:    err.Error(),
			})
			log.Warn("payroll run employee failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
		case already:
			result.Skipped++
		default:
			result.Processed++
		}
	}

	result.Success = result.Failed == 0
	if result.Success {
		result.Message = fmt.Sprintf("Payroll processed for %d employees", result.Processed+result.Skipped)
	} else {
		result.Message = fmt.Sprintf("Payroll completed with %d failures out of %d employees", result.Failed, len(roster))
	}

	s.queueRunCompleted(ctx, result)

	log.Info("payroll run finished",
		zap.String("pay_period_id", periodID),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// queueRunCompleted is best effort: the records are already stored.
func (s *service) queueRunCompleted(ctx context.Context, result RunResult) {
	if s.deps.Outbox == nil {
		return
	}
	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "pay_period", result.PayPeriodID,
		events.PayrollRunCompletedEventType, events.PayrollRunCompletedTopic,
		events.PayrollRunCompletedEvent{
			EventType:   events.PayrollRunCompletedEventType,
			RequestID:   rid,
			PayPeriodID: result.PayPeriodID,
			Success:     result.Success,
			Processed:   result.Processed,
			Skipped:     result.Skipped,
			Failed:      result.Failed,
			OccurredAt:  s.deps.Now().UTC(),
		})
	if err == nil {
		err = s.deps.Outbox.Create(ctx, event)
	}
	if err != nil {
		s.logger.Error("payroll run completed event not queued",
			zap.String("pay_period_id", result.PayPeriodID),
			zap.Error(err),
		)
	}
}

// RequestRun queues a run for the consumer instead of processing inline.
func (s *service) RequestRun(ctx context.Context, periodID, requestedBy string) (RunRequestedResponse, error) {
	period, err := s.period(ctx, periodID)
	if err != nil {
		return RunRequestedResponse{}, err
	}
	if s.deps.Outbox == nil {
		return RunRequestedResponse{}, errors.New("payroll run queue is not configured")
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "pay_period", period.ID.String(),
		events.PayrollRunRequestedEventType, events.PayrollRunRequestedTopic,
		events.PayrollRunRequestedEvent{
			EventType:   events.PayrollRunRequestedEventType,
			RequestID:   rid,
			PayPeriodID: period.ID.String(),
			RequestedBy: requestedBy,
			OccurredAt:  s.deps.Now().UTC(),
		})
	if err != nil {
		return RunRequestedResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunRequestedResponse{}, err
	}
	defer tx.Rollback()

	if err := s.deps.Outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("payroll run request persist failed", zap.String("pay_period_id", periodID), zap.Error(err))
		return RunRequestedResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RunRequestedResponse{}, err
	}

	s.logger.Info("payroll run requested",
		zap.String("pay_period_id", periodID),
		zap.String("requested_by", requestedBy),
		zap.String("event_id", event.ID),
	)
	return RunRequestedResponse{PayPeriodID: period.ID.String(), EventID: event.ID}, nil
}

// Preview computes without persisting.
func (s *service) Preview(ctx context.Context, employeeID, periodID string) (PayrollResponse, error) {
	emp, period, err := s.load(ctx, employeeID, periodID)
	if err != nil {
		return PayrollResponse{}, err
	}

	rec, err := s.calc.Calculate(ctx, *emp, *period)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (PayrollResponse, error) {
	rec, err := s.find(ctx, employeeID, periodID)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) ListByPeriod(ctx context.Context, periodID string) ([]PayrollResponse, error) {
	id, err := uuid.Parse(periodID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPayPeriodID
	}

	records, err := s.repo.FindByPeriod(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	records, err := s.repo.FindByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) PeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error) {
	id, err := uuid.Parse(periodID)
	if err != nil {
		return PeriodSummaryResponse{}, payrollerrors.ErrInvalidPayPeriodID
	}

	totals, err := s.repo.SummarizePeriod(ctx, id)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}
	return PeriodSummaryResponse{
		PayPeriodID:     periodID,
		Employees:       totals.Employees,
		GrossIncome:     totals.GrossIncome.StringFixed(2),
		TotalDeductions: totals.TotalDeductions.StringFixed(2),
		NetSalary:       totals.NetSalary.StringFixed(2),
	}, nil
}

func (s *service) Payslip(ctx context.Context, employeeID, periodID string) ([]byte, error) {
	rec, err := s.find(ctx, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	emp, period, err := s.load(ctx, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	return renderPayslip(*emp, *period, *rec), nil
}

func (s *service) find(ctx context.Context, employeeID, periodID string) (*PayrollRecord, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	perID, err := uuid.Parse(periodID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPayPeriodID
	}

	rec, err := s.repo.FindByEmployeeAndPeriod(ctx, empID, perID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) load(ctx context.Context, employeeID, periodID string) (*employee.Employee, *payperiod.PayPeriod, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, nil, payrollerrors.ErrInvalidEmployeeID
	}
	period, err := s.period(ctx, periodID)
	if err != nil {
		return nil, nil, err
	}

	emp, err := s.deps.Employees.FindByID(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, nil, err
	}
	return emp, period, nil
}

func (s *service) period(ctx context.Context, periodID string) (*payperiod.PayPeriod, error) {
	id, err := uuid.Parse(periodID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPayPeriodID
	}
	p, err := s.deps.Periods.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payperioderrors.ErrPayPeriodNotFound
		}
		return nil, err
	}
	return p, nil
}

func runOutcome(result RunResult, err error) string {
	if err != nil {
		return audit.Outcome(err, apperror.IsBusiness)
	}
	if !result.Success {
		return audit.OutcomeFailed
	}
	return audit.OutcomeSuccess
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func mapToResponse(rec PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		EmployeeID:          rec.EmployeeID.String(),
		PayPeriodID:         rec.PayPeriodID.String(),
		BasicSalary:         rec.BasicSalary.StringFixed(2),
		AttendanceEarnings:  rec.AttendanceEarnings.StringFixed(2),
		OvertimePay:         rec.OvertimePay.StringFixed(2),
		TotalBenefits:       rec.TotalBenefits.StringFixed(2),
		GrossIncome:         rec.GrossIncome.StringFixed(2),
		PensionContribution: rec.PensionContribution.StringFixed(2),
		HealthContribution:  rec.HealthContribution.StringFixed(2),
		HousingContribution: rec.HousingContribution.StringFixed(2),
		WithholdingTax:      rec.WithholdingTax.StringFixed(2),
		TotalDeductions:     rec.TotalDeductions.StringFixed(2),
		NetSalary:           rec.NetSalary.StringFixed(2),
	}
	if rec.ID != uuid.Nil {
		resp.ID = rec.ID.String()
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(records []PayrollRecord) []PayrollResponse {
	resp := make([]PayrollResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToResponse(rec)
	}
	return resp
}
