package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/leavebalance"
	leavebalanceerrors "go-payroll/internal/leavebalance/errors"
	"go-payroll/internal/referencedata"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/approval"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BalanceTracker interface {
	Find(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*leavebalance.LeaveBalance, error)
	CommitUsage(ctx context.Context, tx *sql.Tx, balanceID uuid.UUID, days int) error
}

type LeaveTypeLookup interface {
	GetLeaveType(ctx context.Context, id uuid.UUID) (*referencedata.LeaveType, error)
}

type EmployeeDirectory interface {
	FindBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]employee.Employee, error)
}

type Dependencies struct {
	Balances   BalanceTracker
	LeaveTypes LeaveTypeLookup
	Employees  EmployeeDirectory
	Audit      audit.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id, approverID, notes string) (LeaveResponse, error)
	Reject(ctx context.Context, id, approverID, notes string) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context, approverID string) ([]LeaveResponse, error)
	List(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	deps     Dependencies
	rules    config.LeaveRules
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, rules config.Rules, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if deps.Audit == nil {
		deps.Audit = audit.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		deps:     deps,
		rules:    rules.Leave,
		location: rules.Location(),
		now:      deps.Now,
		logger:   l,
	}
}

func (s *service) today() time.Time {
	t := s.now().In(s.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (resp LeaveResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "leave",
			Action:    "SUBMIT",
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"employee_id": employeeID, "leave_id": resp.ID},
		})
	}()

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leavebalanceerrors.ErrInvalidLeaveTypeID
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	today := s.today()
	if start.After(today.AddDate(0, 0, s.rules.MaxAdvanceDays)) {
		log.Warn("submit leave too far ahead", zap.String("start_date", req.StartDate))
		return LeaveResponse{}, leaveerrors.ErrStartTooFarAhead
	}
	if start.Before(today.AddDate(0, 0, -s.rules.MaxBackdateDays)) {
		log.Warn("submit leave backdated", zap.String("start_date", req.StartDate))
		return LeaveResponse{}, leaveerrors.ErrStartBackdated
	}

	if _, err := s.deps.LeaveTypes.GetLeaveType(ctx, leaveTypeID); err != nil {
		return LeaveResponse{}, err
	}

	days := inclusiveDays(start, end)

	// no balance row for the year means the type is not tracked
	balance, err := s.deps.Balances.Find(ctx, empID, leaveTypeID, start.Year())
	if err != nil {
		log.Error("submit leave balance lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if balance != nil && days > balance.RemainingDays {
		log.Warn("submit leave insufficient balance",
			zap.String("employee_id", employeeID),
			zap.Int("requested_days", days),
			zap.Int("remaining_days", balance.RemainingDays),
		)
		return LeaveResponse{}, leavebalanceerrors.ErrInsufficientBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlap(ctx, empID, start, end)
	if err != nil {
		log.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		log.Warn("submit leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: leaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   days,
		Reason:      req.Reason,
		Status:      approval.StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("total_days", days),
	)
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, id, approverID, notes string) (resp LeaveResponse, err error) {
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "leave",
			Action:    "APPROVE",
			ActorID:   approverID,
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"leave_id": id},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	leaveID, approver, err := parseDecisionIDs(id, approverID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findPending(ctx, qtx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID == approver {
		return LeaveResponse{}, approval.ErrSelfApproval
	}

	balance, err := s.deps.Balances.Find(ctx, l.EmployeeID, l.LeaveTypeID, l.StartDate.Year())
	if err != nil {
		log.Error("approve leave balance lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if balance != nil && l.TotalDays > balance.RemainingDays {
		log.Warn("approve leave insufficient balance",
			zap.String("leave_id", id),
			zap.Int("total_days", l.TotalDays),
			zap.Int("remaining_days", balance.RemainingDays),
		)
		return LeaveResponse{}, leavebalanceerrors.ErrInsufficientBalance
	}

	decidedAt := s.now().UTC()
	note := approval.OptionalNotes(notes)
	ok, err := qtx.Decide(ctx, leaveID, approval.StatusApproved, approver, note, decidedAt)
	if err != nil {
		log.Error("approve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, approval.ErrAlreadyProcessed
	}

	if balance != nil {
		if err := s.deps.Balances.CommitUsage(ctx, tx, balance.ID, l.TotalDays); err != nil {
			log.Error("approve leave commit usage failed", zap.String("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("approve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = approval.StatusApproved
	l.ApproverID = &approver
	l.SupervisorNotes = note
	l.DecidedAt = &decidedAt

	resp = mapToResponse(*l)
	if balance != nil {
		left := balance.RemainingDays - l.TotalDays
		resp.RemainingDays = &left
	}

	log.Info("approve leave success",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.Int("total_days", l.TotalDays),
	)
	return resp, nil
}

func (s *service) Reject(ctx context.Context, id, approverID, notes string) (resp LeaveResponse, err error) {
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "leave",
			Action:    "REJECT",
			ActorID:   approverID,
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"leave_id": id},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	reason, err := approval.RejectionNotes(notes)
	if err != nil {
		return LeaveResponse{}, err
	}
	leaveID, approver, err := parseDecisionIDs(id, approverID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reject leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findPending(ctx, qtx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID == approver {
		return LeaveResponse{}, approval.ErrSelfApproval
	}

	decidedAt := s.now().UTC()
	ok, err := qtx.Decide(ctx, leaveID, approval.StatusRejected, approver, &reason, decidedAt)
	if err != nil {
		log.Error("reject leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, approval.ErrAlreadyProcessed
	}

	if err := tx.Commit(); err != nil {
		log.Error("reject leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = approval.StatusRejected
	l.ApproverID = &approver
	l.SupervisorNotes = &reason
	l.DecidedAt = &decidedAt

	log.Info("reject leave success",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
	)
	return mapToResponse(*l), nil
}

func (s *service) findPending(ctx context.Context, repo Repository, id uuid.UUID) (*LeaveRequest, error) {
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if l.Status != approval.StatusPending {
		s.logger.Warn("leave already processed",
			zap.String("leave_id", id.String()),
			zap.String("status", l.Status),
		)
		return nil, approval.ErrAlreadyProcessed
	}
	return l, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// ListPending is the approver's queue: pending requests of their direct reports.
func (s *service) ListPending(ctx context.Context, approverID string) ([]LeaveResponse, error) {
	id, err := uuid.Parse(approverID)
	if err != nil {
		return nil, approval.ErrInvalidApproverID
	}

	reports, err := s.deps.Employees.FindBySupervisor(ctx, id)
	if err != nil {
		s.logger.Error("list pending leave reports lookup failed", zap.Error(err))
		return nil, err
	}
	ids := make([]uuid.UUID, len(reports))
	for i, e := range reports {
		ids[i] = e.ID
	}

	leaves, err := s.repo.FindPendingByEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) List(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, error) {
	from, to, err := parseRange(filter.From, filter.To)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" && !approval.IsValidStatus(filter.Status) {
		return nil, leaveerrors.ErrInvalidStatus
	}

	leaves, err := s.repo.FindByDateRange(ctx, from, to, filter.Status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func parseDecisionIDs(id, approverID string) (uuid.UUID, uuid.UUID, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, leaveerrors.ErrInvalidLeaveID
	}
	approver, err := uuid.Parse(approverID)
	if err != nil {
		return uuid.Nil, uuid.Nil, approval.ErrInvalidApproverID
	}
	return leaveID, approver, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveTypeID:     l.LeaveTypeID.String(),
		StartDate:       l.StartDate.Format(DateLayout),
		EndDate:         l.EndDate.Format(DateLayout),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		SupervisorNotes: l.SupervisorNotes,
	}
	if l.ApproverID != nil {
		v := l.ApproverID.String()
		resp.ApproverID = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
