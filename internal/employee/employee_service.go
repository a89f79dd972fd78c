package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	UpdateSalary(ctx context.Context, actorID, id string, req UpdateSalaryRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (EmployeeResponse, error)
	GetSalaryHistory(ctx context.Context, id string) ([]SalaryChangeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

// NewServiceWithOutbox also queues an employee_created event in the same
// transaction as the insert.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
	)

	basic, hourly, err := parseAmounts(req.BasicSalary, req.HourlyRate)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	departmentID, err := parseOptionalUUID(req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("Department Id")
	}
	positionID, err := parseOptionalUUID(req.PositionID)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("Position Id")
	}
	supervisorID, err := parseOptionalUUID(req.SupervisorID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSupervisorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if supervisorID != nil {
		if _, err := qtx.FindByID(ctx, *supervisorID); err != nil {
			s.logger.Warn("create employee supervisor lookup failed",
				zap.String("supervisor_id", supervisorID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	e := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		DepartmentID:   departmentID,
		PositionID:     positionID,
		SupervisorID:   supervisorID,
		BasicSalary:    basic,
		HourlyRate:     hourly,
		Status:         StatusActive,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		now := s.now().UTC()
		event, err := kafka.NewOutboxEvent(rid, "employee", e.ID.String(),
			events.EmployeeCreatedEventType, events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:  events.EmployeeCreatedEventType,
				RequestID:  rid,
				EmployeeID: e.ID.String(),
				HiredYear:  now.Year(),
				OccurredAt: now,
			})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error) {
	var (
		employees []Employee
		err       error
	)

	switch {
	case filter.SupervisorID != "":
		supervisorID, perr := uuid.Parse(filter.SupervisorID)
		if perr != nil {
			return nil, employeeerrors.ErrInvalidSupervisorID
		}
		employees, err = s.repo.FindBySupervisor(ctx, supervisorID)
	case filter.DepartmentID != "":
		departmentID, perr := uuid.Parse(filter.DepartmentID)
		if perr != nil {
			return nil, apperror.InvalidField("Department Id")
		}
		employees, err = s.repo.FindByDepartment(ctx, departmentID)
	case filter.Status != "":
		if !IsValidStatus(filter.Status) {
			return nil, employeeerrors.ErrInvalidStatus
		}
		employees, err = s.repo.FindByStatus(ctx, filter.Status)
	default:
		employees, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	// supervisor and department lookups may still need a status narrowing
	if filter.Status != "" && (filter.SupervisorID != "" || filter.DepartmentID != "") {
		filtered := employees[:0]
		for _, e := range employees {
			if e.Status == filter.Status {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}

	return mapToListResponse(employees), nil
}

func (s *service) UpdateSalary(ctx context.Context, actorID, id string, req UpdateSalaryRequest) (EmployeeResponse, error) {
	s.logger.Debug("update salary requested",
		zap.String("employee_id", id),
		zap.String("actor_id", actorID),
	)

	employeeID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	basic, hourly, err := parseAmounts(req.BasicSalary, req.HourlyRate)
	if err != nil {
		s.logger.Warn("update salary validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	effective, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return EmployeeResponse{}, apperror.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if e.Status == StatusTerminated {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeTerminated
	}

	change := &SalaryChange{
		ID:             uuid.New(),
		EmployeeID:     e.ID,
		OldBasicSalary: e.BasicSalary,
		NewBasicSalary: basic,
		OldHourlyRate:  e.HourlyRate,
		NewHourlyRate:  hourly,
		EffectiveDate:  effective,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		change.ChangedBy = &actor
	}

	if err := qtx.UpdateSalary(ctx, e.ID, basic, hourly); err != nil {
		s.logger.Error("update salary persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateSalaryChange(ctx, change); err != nil {
		s.logger.Error("update salary history persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	e.BasicSalary = basic
	e.HourlyRate = hourly
	s.logger.Info("update salary success",
		zap.String("employee_id", id),
		zap.String("basic_salary", basic.StringFixed(2)),
		zap.String("hourly_rate", hourly.StringFixed(2)),
	)
	return mapToResponse(*e), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (EmployeeResponse, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !IsValidStatus(req.Status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.UpdateStatus(ctx, employeeID, req.Status); err != nil {
		s.logger.Error("update employee status failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee status success",
		zap.String("employee_id", id),
		zap.String("from_status", e.Status),
		zap.String("to_status", req.Status),
	)
	e.Status = req.Status
	return mapToResponse(*e), nil
}

func (s *service) GetSalaryHistory(ctx context.Context, id string) ([]SalaryChangeResponse, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := s.repo.FindByID(ctx, employeeID); err != nil {
		return nil, mapRepositoryError(err)
	}

	changes, err := s.repo.FindSalaryChanges(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryChangeResponse, len(changes))
	for i, c := range changes {
		resp[i] = SalaryChangeResponse{
			ID:             c.ID.String(),
			OldBasicSalary: c.OldBasicSalary.StringFixed(2),
			NewBasicSalary: c.NewBasicSalary.StringFixed(2),
			OldHourlyRate:  c.OldHourlyRate.StringFixed(2),
			NewHourlyRate:  c.NewHourlyRate.StringFixed(2),
			EffectiveDate:  c.EffectiveDate.Format("2006-01-02"),
			ChangedBy:      uuidString(c.ChangedBy),
		}
	}
	return resp, nil
}

func parseAmounts(basicRaw, hourlyRaw string) (decimal.Decimal, decimal.Decimal, error) {
	basic, err := decimal.NewFromString(basicRaw)
	if err != nil || basic.IsNegative() {
		return decimal.Zero, decimal.Zero, employeeerrors.ErrInvalidAmount
	}
	hourly, err := decimal.NewFromString(hourlyRaw)
	if err != nil || hourly.IsNegative() {
		return decimal.Zero, decimal.Zero, employeeerrors.ErrInvalidAmount
	}
	return basic.Round(2), hourly.Round(2), nil
}

func parseOptionalUUID(v *string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, errors.New("invalid uuid")
	}
	return &id, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		DepartmentID:   uuidString(e.DepartmentID),
		PositionID:     uuidString(e.PositionID),
		SupervisorID:   uuidString(e.SupervisorID),
		BasicSalary:    e.BasicSalary.StringFixed(2),
		HourlyRate:     e.HourlyRate.StringFixed(2),
		Status:         e.Status,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
