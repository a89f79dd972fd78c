package overtime

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	overtimeerrors "go-payroll/internal/overtime/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/approval"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttendanceChecker interface {
	HasCompleteRecord(ctx context.Context, employeeID uuid.UUID, t time.Time) (bool, error)
}

type EmployeeDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
	FindBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]employee.Employee, error)
}

type Dependencies struct {
	Attendance AttendanceChecker
	Employees  EmployeeDirectory
	Audit      audit.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitOvertimeRequest) (OvertimeResponse, error)
	Approve(ctx context.Context, id, approverID, notes string) (OvertimeResponse, error)
	Reject(ctx context.Context, id, approverID, notes string) (OvertimeResponse, error)
	GetByID(ctx context.Context, id string) (OvertimeResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
	ListPending(ctx context.Context, approverID string) ([]OvertimeResponse, error)
	List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeResponse, error)
	// ApprovedPay sums the pay of approved overtime starting within [from, to).
	ApprovedPay(ctx context.Context, employeeID uuid.UUID, hourlyRate decimal.Decimal, from, to time.Time) (decimal.Decimal, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Dependencies
	rules  config.OvertimeRules
	calc   *Calculator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, rules config.Rules, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	if deps.Audit == nil {
		deps.Audit = audit.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		db:     db,
		repo:   repo,
		deps:   deps,
		rules:  rules.Overtime,
		calc:   NewCalculator(rules.Overtime, rules.Location()),
		logger: l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitOvertimeRequest) (resp OvertimeResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit overtime requested",
		zap.String("employee_id", employeeID),
		zap.String("start_time", req.StartTime),
		zap.String("end_time", req.EndTime),
	)
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "overtime",
			Action:    "SUBMIT",
			ActorID:   employeeID,
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"overtime_id": resp.ID},
		})
	}()

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidEmployeeID
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if !end.After(start) {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidTimeRange
	}

	minutes := money.WholeMinutes(end.Sub(start))
	if minutes < int64(s.rules.MinMinutes) {
		return OvertimeResponse{}, overtimeerrors.ErrDurationTooShort
	}
	if minutes > int64(s.rules.MaxDailyMinutes) {
		return OvertimeResponse{}, overtimeerrors.ErrDailyLimitExceeded
	}

	complete, err := s.deps.Attendance.HasCompleteRecord(ctx, empID, start)
	if err != nil {
		log.Error("submit overtime attendance lookup failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	if !complete {
		log.Warn("submit overtime without complete attendance",
			zap.String("employee_id", employeeID),
			zap.String("start_time", req.StartTime),
		)
		return OvertimeResponse{}, overtimeerrors.ErrAttendanceRequired
	}

	hours := money.HoursFromMinutes(minutes)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit overtime begin tx failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.checkWeeklyLimit(ctx, qtx, empID, start, hours); err != nil {
		return OvertimeResponse{}, err
	}

	overlap, err := qtx.HasOverlap(ctx, empID, start, end)
	if err != nil {
		log.Error("submit overtime overlap check failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	if overlap {
		log.Warn("submit overtime overlap detected", zap.String("employee_id", employeeID))
		return OvertimeResponse{}, overtimeerrors.ErrOvertimeOverlap
	}

	o := &OvertimeRequest{
		ID:           uuid.New(),
		EmployeeID:   empID,
		StartTime:    start,
		EndTime:      end,
		Hours:        hours,
		Reason:       req.Reason,
		IsNightShift: s.calc.IsNightShift(start, end),
		IsWeekend:    s.calc.IsWeekend(start),
		Status:       approval.StatusPending,
	}
	if err := qtx.Create(ctx, o); err != nil {
		log.Error("submit overtime persist failed", zap.Error(err))
		return OvertimeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit overtime commit failed", zap.Error(err))
		return OvertimeResponse{}, err
	}

	log.Info("submit overtime success",
		zap.String("overtime_id", o.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("hours", hours.StringFixed(2)),
	)
	return mapToResponse(*o), nil
}

// checkWeeklyLimit compares approved hours of the Monday-anchored week of
// start plus the requested hours against the weekly cap.
func (s *service) checkWeeklyLimit(ctx context.Context, repo Repository, employeeID uuid.UUID, start time.Time, hours decimal.Decimal) error {
	weekStart := s.calc.WeekStart(start)
	approved, err := repo.ApprovedHoursBetween(ctx, employeeID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		s.logger.Error("weekly overtime lookup failed", zap.Error(err))
		return err
	}
	if approved.Add(hours).GreaterThan(s.rules.MaxWeeklyHours) {
		s.logger.Warn("weekly overtime limit exceeded",
			zap.String("employee_id", employeeID.String()),
			zap.String("approved_hours", approved.StringFixed(2)),
			zap.String("requested_hours", hours.StringFixed(2)),
		)
		return overtimeerrors.ErrWeeklyLimitExceeded
	}
	return nil
}

func (s *service) Approve(ctx context.Context, id, approverID, notes string) (resp OvertimeResponse, err error) {
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "overtime",
			Action:    "APPROVE",
			ActorID:   approverID,
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"overtime_id": id, "pay": derefString(resp.Pay)},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	overtimeID, approver, err := parseDecisionIDs(id, approverID)
	if err != nil {
		return OvertimeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("approve overtime begin tx failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := s.findPending(ctx, qtx, overtimeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if o.EmployeeID == approver {
		return OvertimeResponse{}, approval.ErrSelfApproval
	}

	if err := s.checkWeeklyLimit(ctx, qtx, o.EmployeeID, o.StartTime, o.Hours); err != nil {
		return OvertimeResponse{}, err
	}

	emp, err := s.deps.Employees.FindByID(ctx, o.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OvertimeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		log.Error("approve overtime employee lookup failed", zap.Error(err))
		return OvertimeResponse{}, err
	}

	decidedAt := s.deps.Now().UTC()
	note := approval.OptionalNotes(notes)
	ok, err := qtx.Decide(ctx, overtimeID, approval.StatusApproved, approver, note, decidedAt)
	if err != nil {
		log.Error("approve overtime persist failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}
	if !ok {
		return OvertimeResponse{}, approval.ErrAlreadyProcessed
	}

	if err := tx.Commit(); err != nil {
		log.Error("approve overtime commit failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}

	o.Status = approval.StatusApproved
	o.ApproverID = &approver
	o.SupervisorNotes = note
	o.DecidedAt = &decidedAt

	resp = mapToResponse(*o)
	multiplier := s.calc.Multiplier(o.IsNightShift, o.IsWeekend).StringFixed(2)
	pay := s.calc.Pay(*o, emp.HourlyRate).StringFixed(2)
	resp.Multiplier = &multiplier
	resp.Pay = &pay

	log.Info("approve overtime success",
		zap.String("overtime_id", id),
		zap.String("approver_id", approverID),
		zap.String("pay", pay),
	)
	return resp, nil
}

func (s *service) Reject(ctx context.Context, id, approverID, notes string) (resp OvertimeResponse, err error) {
	defer func() {
		s.deps.Audit.Log(ctx, audit.Entry{
			Component: "overtime",
			Action:    "REJECT",
			ActorID:   approverID,
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"overtime_id": id},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	reason, err := approval.RejectionNotes(notes)
	if err != nil {
		return OvertimeResponse{}, err
	}
	overtimeID, approver, err := parseDecisionIDs(id, approverID)
	if err != nil {
		return OvertimeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reject overtime begin tx failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := s.findPending(ctx, qtx, overtimeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if o.EmployeeID == approver {
		return OvertimeResponse{}, approval.ErrSelfApproval
	}

	decidedAt := s.deps.Now().UTC()
	ok, err := qtx.Decide(ctx, overtimeID, approval.StatusRejected, approver, &reason, decidedAt)
	if err != nil {
		log.Error("reject overtime persist failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}
	if !ok {
		return OvertimeResponse{}, approval.ErrAlreadyProcessed
	}

	if err := tx.Commit(); err != nil {
		log.Error("reject overtime commit failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}

	o.Status = approval.StatusRejected
	o.ApproverID = &approver
	o.SupervisorNotes = &reason
	o.DecidedAt = &decidedAt

	log.Info("reject overtime success", zap.String("overtime_id", id), zap.String("approver_id", approverID))
	return mapToResponse(*o), nil
}

func (s *service) findPending(ctx context.Context, repo Repository, id uuid.UUID) (*OvertimeRequest, error) {
	o, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, overtimeerrors.ErrOvertimeNotFound
		}
		return nil, err
	}
	if o.Status != approval.StatusPending {
		s.logger.Warn("overtime already processed",
			zap.String("overtime_id", id.String()),
			zap.String("status", o.Status),
		)
		return nil, approval.ErrAlreadyProcessed
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OvertimeResponse, error) {
	overtimeID, err := uuid.Parse(id)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidOvertimeID
	}

	o, err := s.repo.FindByID(ctx, overtimeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OvertimeResponse{}, overtimeerrors.ErrOvertimeNotFound
		}
		return OvertimeResponse{}, err
	}
	return mapToResponse(*o), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]OvertimeResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, overtimeerrors.ErrInvalidEmployeeID
	}

	list, err := s.repo.FindByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) ListPending(ctx context.Context, approverID string) ([]OvertimeResponse, error) {
	id, err := uuid.Parse(approverID)
	if err != nil {
		return nil, approval.ErrInvalidApproverID
	}

	reports, err := s.deps.Employees.FindBySupervisor(ctx, id)
	if err != nil {
		s.logger.Error("list pending overtime reports lookup failed", zap.Error(err))
		return nil, err
	}
	ids := make([]uuid.UUID, len(reports))
	for i, e := range reports {
		ids[i] = e.ID
	}

	list, err := s.repo.FindPendingByEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

// List filters by start time; from and to are dates, to inclusive.
func (s *service) List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeResponse, error) {
	loc := s.calc.location
	from, err := time.ParseInLocation(time.DateOnly, filter.From, loc)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat
	}
	to, err := time.ParseInLocation(time.DateOnly, filter.To, loc)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat
	}
	if to.Before(from) {
		return nil, overtimeerrors.ErrInvalidTimeRange
	}
	if filter.Status != "" && !approval.IsValidStatus(filter.Status) {
		return nil, overtimeerrors.ErrInvalidStatus
	}

	list, err := s.repo.FindByDateRange(ctx, from, to.AddDate(0, 0, 1), filter.Status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) ApprovedPay(ctx context.Context, employeeID uuid.UUID, hourlyRate decimal.Decimal, from, to time.Time) (decimal.Decimal, error) {
	list, err := s.repo.FindApprovedStartingBetween(ctx, employeeID, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, o := range list {
		total = total.Add(s.calc.Pay(o, hourlyRate))
	}
	return total, nil
}

func parseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, overtimeerrors.ErrInvalidTimeFormat
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, overtimeerrors.ErrInvalidTimeFormat
	}
	return start, end, nil
}

func parseDecisionIDs(id, approverID string) (uuid.UUID, uuid.UUID, error) {
	overtimeID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, overtimeerrors.ErrInvalidOvertimeID
	}
	approver, err := uuid.Parse(approverID)
	if err != nil {
		return uuid.Nil, uuid.Nil, approval.ErrInvalidApproverID
	}
	return overtimeID, approver, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func mapToResponse(o OvertimeRequest) OvertimeResponse {
	resp := OvertimeResponse{
		ID:              o.ID.String(),
		EmployeeID:      o.EmployeeID.String(),
		StartTime:       o.StartTime.Format(time.RFC3339),
		EndTime:         o.EndTime.Format(time.RFC3339),
		Hours:           o.Hours.StringFixed(2),
		Reason:          o.Reason,
		IsNightShift:    o.IsNightShift,
		IsWeekend:       o.IsWeekend,
		Status:          o.Status,
		SupervisorNotes: o.SupervisorNotes,
	}
	if o.ApproverID != nil {
		v := o.ApproverID.String()
		resp.ApproverID = &v
	}
	if o.DecidedAt != nil {
		v := o.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(list []OvertimeRequest) []OvertimeResponse {
	resp := make([]OvertimeResponse, len(list))
	for i, o := range list {
		resp[i] = mapToResponse(o)
	}
	return resp
}
