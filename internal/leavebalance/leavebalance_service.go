package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	leavebalanceerrors "go-payroll/internal/leavebalance/errors"
	"go-payroll/internal/referencedata"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeaveTypeSource interface {
	LeaveTypes(ctx context.Context) ([]referencedata.LeaveType, error)
}

type EmployeeLister interface {
	FindByStatus(ctx context.Context, status string) ([]employee.Employee, error)
}

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	InitializeYear(ctx context.Context, employeeID uuid.UUID, year int) (InitializeResult, error)
	InitializeYearForAll(ctx context.Context, year int) (InitializeAllResult, error)
	CarryOver(ctx context.Context, employeeID string, fromYear int) (CarryOverResult, error)
	GetBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (BalanceResponse, error)
	ListBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// Find returns nil without error when no balance row exists.
	Find(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	// CommitUsage runs inside tx when one is given.
	CommitUsage(ctx context.Context, tx *sql.Tx, balanceID uuid.UUID, days int) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	leaveTypes LeaveTypeSource
	employees  EmployeeLister
	rules      config.LeaveRules
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	leaveTypes LeaveTypeSource,
	employees EmployeeLister,
	rules config.LeaveRules,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		leaveTypes: leaveTypes,
		employees:  employees,
		rules:      rules,
		logger:     l,
	}
}

// defaultAllocation is the yearly entitlement a new balance row starts with.
func (s *service) defaultAllocation(lt referencedata.LeaveType) int {
	switch lt.Category {
	case referencedata.CategoryAnnual:
		return s.rules.AnnualDefaultDays
	case referencedata.CategorySick:
		return s.rules.SickDefaultDays
	default:
		return lt.MaxDaysPerYear
	}
}

// InitializeYear creates missing balance rows one by one, so a row created
// concurrently by another caller only counts as existing.
func (s *service) InitializeYear(ctx context.Context, employeeID uuid.UUID, year int) (InitializeResult, error) {
	result := InitializeResult{EmployeeID: employeeID.String(), Year: year}

	types, err := s.leaveTypes.LeaveTypes(ctx)
	if err != nil {
		s.logger.Error("initialize year leave types lookup failed", zap.Error(err))
		return result, err
	}

	for _, lt := range types {
		_, err := s.repo.FindByKey(ctx, employeeID, lt.ID, year)
		if err == nil {
			result.Existing++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, err
		}

		total := s.defaultAllocation(lt)
		b := &LeaveBalance{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			LeaveTypeID:   lt.ID,
			Year:          year,
			TotalDays:     total,
			RemainingDays: remaining(total, 0, 0),
		}
		if err := s.repo.Create(ctx, b); err != nil {
			if isUniqueBalanceViolation(err) {
				result.Existing++
				continue
			}
			s.logger.Error("initialize year create balance failed",
				zap.String("employee_id", employeeID.String()),
				zap.String("leave_type_id", lt.ID.String()),
				zap.Error(err),
			)
			return result, err
		}
		result.Created++
	}

	s.logger.Info("initialize year success",
		zap.String("employee_id", result.EmployeeID),
		zap.Int("year", year),
		zap.Int("created", result.Created),
		zap.Int("existing", result.Existing),
	)
	return result, nil
}

func (s *service) InitializeYearForAll(ctx context.Context, year int) (InitializeAllResult, error) {
	result := InitializeAllResult{Year: year}

	roster, err := s.employees.FindByStatus(ctx, employee.StatusActive)
	if err != nil {
		s.logger.Error("initialize year roster lookup failed", zap.Error(err))
		return result, err
	}

	result.Employees = len(roster)
	for _, e := range roster {
		r, err := s.InitializeYear(ctx, e.ID, year)
		result.Created += r.Created
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", e.EmployeeNumber, err))
		}
	}

	s.logger.Info("initialize year for roster done",
		zap.Int("year", year),
		zap.Int("employees", result.Employees),
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// CarryOver moves unused annual days into the next year, capped by the
// configured maximum. Next-year rows are created when missing.
func (s *service) CarryOver(ctx context.Context, employeeID string, fromYear int) (CarryOverResult, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return CarryOverResult{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	toYear := fromYear + 1

	types, err := s.leaveTypes.LeaveTypes(ctx)
	if err != nil {
		return CarryOverResult{}, err
	}
	byID := make(map[uuid.UUID]referencedata.LeaveType, len(types))
	for _, lt := range types {
		byID[lt.ID] = lt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("carry over begin tx failed", zap.Error(err))
		return CarryOverResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByEmployeeYear(ctx, id, fromYear)
	if err != nil {
		return CarryOverResult{}, err
	}

	result := CarryOverResult{EmployeeID: employeeID, ToYear: toYear}
	for _, b := range current {
		lt, ok := byID[b.LeaveTypeID]
		if !ok || lt.Category != referencedata.CategoryAnnual {
			continue
		}

		carry := min(max(b.RemainingDays, 0), s.rules.MaxCarryOverDays)

		next, err := qtx.FindByKey(ctx, id, b.LeaveTypeID, toYear)
		switch {
		case err == nil:
			if err := qtx.SetCarryOver(ctx, next.ID, carry); err != nil {
				return CarryOverResult{}, err
			}
			next.CarryOverDays = carry
			next.RemainingDays = remaining(next.TotalDays, carry, next.UsedDays)
		case errors.Is(err, gorm.ErrRecordNotFound):
			total := s.defaultAllocation(lt)
			next = &LeaveBalance{
				ID:            uuid.New(),
				EmployeeID:    id,
				LeaveTypeID:   b.LeaveTypeID,
				Year:          toYear,
				TotalDays:     total,
				CarryOverDays: carry,
				RemainingDays: remaining(total, carry, 0),
			}
			if err := qtx.Create(ctx, next); err != nil {
				return CarryOverResult{}, err
			}
		default:
			return CarryOverResult{}, err
		}

		resp := mapToResponse(*next)
		resp.LeaveTypeCode = lt.Code
		result.Balances = append(result.Balances, resp)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("carry over commit failed", zap.Error(err))
		return CarryOverResult{}, err
	}

	s.logger.Info("carry over success",
		zap.String("employee_id", employeeID),
		zap.Int("from_year", fromYear),
		zap.Int("balances", len(result.Balances)),
	)
	return result, nil
}

func (s *service) GetBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (BalanceResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	ltid, err := uuid.Parse(leaveTypeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidLeaveTypeID
	}

	b, err := s.repo.FindByKey(ctx, eid, ltid, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, leavebalanceerrors.ErrBalanceNotFound
		}
		return BalanceResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) ListBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployeeYear(ctx, id, year)
	if err != nil {
		return nil, err
	}

	codes := map[uuid.UUID]string{}
	if types, err := s.leaveTypes.LeaveTypes(ctx); err == nil {
		for _, lt := range types {
			codes[lt.ID] = lt.Code
		}
	} else {
		s.logger.Warn("list balances leave type codes unavailable", zap.Error(err))
	}

	resp := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		resp[i] = mapToResponse(b)
		resp[i].LeaveTypeCode = codes[b.LeaveTypeID]
	}
	return resp, nil
}

func (s *service) Find(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	b, err := s.repo.FindByKey(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (s *service) CommitUsage(ctx context.Context, tx *sql.Tx, balanceID uuid.UUID, days int) error {
	if days <= 0 {
		return leavebalanceerrors.ErrInvalidDays
	}

	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	ok, err := repo.AddUsage(ctx, balanceID, days)
	if err != nil {
		s.logger.Error("commit usage failed", zap.String("balance_id", balanceID.String()), zap.Error(err))
		return err
	}
	if !ok {
		return leavebalanceerrors.ErrInsufficientBalance
	}

	s.logger.Info("commit usage success",
		zap.String("balance_id", balanceID.String()),
		zap.Int("days", days),
	)
	return nil
}

func isUniqueBalanceViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_balance_key"
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		CarryOverDays: b.CarryOverDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}
}
