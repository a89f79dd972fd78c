package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordTimeIn(ctx context.Context, employeeID string, at time.Time) (TimeInResponse, error)
	RecordTimeOut(ctx context.Context, employeeID string, at time.Time) (TimeOutResponse, error)
	MonthlyStatistics(ctx context.Context, employeeID, month string) (MonthlyStatisticsResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, filter DateRangeFilter) ([]AttendanceResponse, error)
	ListTardiness(ctx context.Context, employeeID string, filter DateRangeFilter) ([]TardinessResponse, error)

	// CompletedHours sums the worked hours of complete records dated within [from, to].
	CompletedHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	// HasCompleteRecord reports whether the calendar day of t has both times marked.
	HasCompleteRecord(ctx context.Context, employeeID uuid.UUID, t time.Time) (bool, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	schedule config.Schedule
	audit    audit.Logger
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, schedule config.Schedule, auditLog audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if auditLog == nil {
		auditLog = audit.Nop()
	}
	return &service{db: db, repo: repo, schedule: schedule, audit: auditLog, logger: l}
}

func (s *service) RecordTimeIn(ctx context.Context, employeeID string, at time.Time) (resp TimeInResponse, err error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return TimeInResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	defer func() {
		s.audit.Log(ctx, audit.Entry{
			Component: "attendance",
			Action:    "TIME_IN",
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"employee_id": employeeID, "late_minutes": resp.LateMinutes},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	day := s.schedule.DateOf(at)
	date := civilDate(day)

	lateness := at.Sub(s.schedule.StartOn(day))
	lateMinutes := money.WholeMinutes(lateness)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("time-in begin tx failed", zap.Error(err))
		return TimeInResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByEmployeeAndDate(ctx, id, date)
	switch {
	case err == nil:
		log.Warn("time-in already marked",
			zap.String("employee_id", employeeID),
			zap.String("date", date.Format(DateLayout)),
		)
		return TimeInResponse{}, attendanceerrors.ErrAlreadyMarked
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("time-in lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TimeInResponse{}, err
	}

	timeIn := at.UTC()
	rec := &AttendanceRecord{
		ID:             uuid.New(),
		EmployeeID:     id,
		AttendanceDate: date,
		TimeIn:         &timeIn,
	}
	if err := qtx.Create(ctx, rec); err != nil {
		log.Error("time-in persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TimeInResponse{}, mapRepositoryError(err)
	}

	resp = TimeInResponse{
		ID:             rec.ID.String(),
		AttendanceDate: date.Format(DateLayout),
		TimeIn:         at.In(s.schedule.Location()).Format(time.RFC3339),
		IsLate:         lateness > 0,
		LateMinutes:    int(lateMinutes),
	}

	if lateness > s.schedule.Grace() {
		t := newTardiness(rec.ID, TardinessLate, lateMinutes)
		if err := qtx.CreateTardiness(ctx, t); err != nil {
			log.Error("late record persist failed", zap.String("employee_id", employeeID), zap.Error(err))
			return TimeInResponse{}, err
		}
		resp.TardinessHours = t.Hours.StringFixed(2)
	}

	if err := tx.Commit(); err != nil {
		log.Error("time-in commit failed", zap.Error(err))
		return TimeInResponse{}, err
	}

	log.Info("time-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", resp.AttendanceDate),
		zap.Bool("is_late", resp.IsLate),
		zap.Int("late_minutes", resp.LateMinutes),
	)
	return resp, nil
}

func (s *service) RecordTimeOut(ctx context.Context, employeeID string, at time.Time) (resp TimeOutResponse, err error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return TimeOutResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	defer func() {
		s.audit.Log(ctx, audit.Entry{
			Component: "attendance",
			Action:    "TIME_OUT",
			Outcome:   audit.Outcome(err, apperror.IsBusiness),
			Message:   errMessage(err),
			Meta:      map[string]any{"employee_id": employeeID, "undertime_minutes": resp.UndertimeMinutes},
		})
	}()

	log := contextutil.GetLogger(ctx, s.logger)
	day := s.schedule.DateOf(at)
	date := civilDate(day)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("time-out begin tx failed", zap.Error(err))
		return TimeOutResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, id, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeOutResponse{}, attendanceerrors.ErrNoTimeIn
		}
		log.Error("time-out lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TimeOutResponse{}, err
	}
	if rec.TimeIn == nil {
		return TimeOutResponse{}, attendanceerrors.ErrNoTimeIn
	}
	if rec.TimeOut != nil {
		return TimeOutResponse{}, attendanceerrors.ErrAlreadyMarked
	}

	updated, err := qtx.SetTimeOut(ctx, rec.ID, at.UTC())
	if err != nil {
		log.Error("time-out persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TimeOutResponse{}, err
	}
	if !updated {
		return TimeOutResponse{}, attendanceerrors.ErrAlreadyMarked
	}

	// no grace period applies to undertime
	undertimeMinutes := money.WholeMinutes(s.schedule.EndOn(day).Sub(at))
	if undertimeMinutes > 0 {
		if err := qtx.CreateTardiness(ctx, newTardiness(rec.ID, TardinessUndertime, undertimeMinutes)); err != nil {
			log.Error("undertime record persist failed", zap.String("employee_id", employeeID), zap.Error(err))
			return TimeOutResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("time-out commit failed", zap.Error(err))
		return TimeOutResponse{}, err
	}

	loc := s.schedule.Location()
	resp = TimeOutResponse{
		ID:               rec.ID.String(),
		AttendanceDate:   date.Format(DateLayout),
		TimeIn:           rec.TimeIn.In(loc).Format(time.RFC3339),
		TimeOut:          at.In(loc).Format(time.RFC3339),
		WorkedHours:      money.HoursBetween(*rec.TimeIn, at).StringFixed(2),
		UndertimeMinutes: int(undertimeMinutes),
	}

	log.Info("time-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", resp.AttendanceDate),
		zap.String("worked_hours", resp.WorkedHours),
	)
	return resp, nil
}

func (s *service) MonthlyStatistics(ctx context.Context, employeeID, month string) (MonthlyStatisticsResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return MonthlyStatisticsResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		return MonthlyStatisticsResponse{}, attendanceerrors.ErrInvalidMonth
	}
	last := first.AddDate(0, 1, -1)

	rows, err := s.repo.FindByEmployeeBetween(ctx, id, first, last)
	if err != nil {
		s.logger.Error("monthly statistics lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MonthlyStatisticsResponse{}, err
	}

	var (
		complete int
		minutes  int64
	)
	for _, r := range rows {
		if r.IsComplete() {
			complete++
			minutes += money.WholeMinutes(r.WorkedDuration())
		}
	}

	working := WorkingDaysInMonth(first.Year(), first.Month())
	rate := decimal.Zero
	if working > 0 {
		rate = money.Round2(decimal.NewFromInt(int64(complete)).
			Div(decimal.NewFromInt(int64(working))).
			Mul(hundred))
	}

	return MonthlyStatisticsResponse{
		Month:          first.Format(MonthLayout),
		TotalDays:      len(rows),
		CompleteDays:   complete,
		IncompleteDays: len(rows) - complete,
		TotalHours:     money.HoursFromMinutes(minutes).StringFixed(2),
		WorkingDays:    working,
		AttendanceRate: rate.StringFixed(2),
	}, nil
}

// WorkingDaysInMonth counts Monday to Friday days in the month.
func WorkingDaysInMonth(year int, month time.Month) int {
	days := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, filter DateRangeFilter) ([]AttendanceResponse, error) {
	id, from, to, err := parseRange(employeeID, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployeeBetween(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	loc := s.schedule.Location()
	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = AttendanceResponse{
			ID:             r.ID.String(),
			EmployeeID:     r.EmployeeID.String(),
			AttendanceDate: r.AttendanceDate.Format(DateLayout),
			TimeIn:         formatTime(r.TimeIn, loc),
			TimeOut:        formatTime(r.TimeOut, loc),
			IsComplete:     r.IsComplete(),
			WorkedHours:    money.HoursFromMinutes(money.WholeMinutes(r.WorkedDuration())).StringFixed(2),
		}
	}
	return resp, nil
}

func (s *service) ListTardiness(ctx context.Context, employeeID string, filter DateRangeFilter) ([]TardinessResponse, error) {
	id, from, to, err := parseRange(employeeID, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindWithTardinessBetween(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]TardinessResponse, 0, len(rows))
	for _, r := range rows {
		for _, t := range r.Tardiness {
			resp = append(resp, TardinessResponse{
				ID:             t.ID.String(),
				AttendanceID:   r.ID.String(),
				AttendanceDate: r.AttendanceDate.Format(DateLayout),
				Type:           t.Type,
				Minutes:        t.Minutes,
				Hours:          t.Hours.StringFixed(2),
				Note:           t.Note,
			})
		}
	}
	return resp, nil
}

func (s *service) CompletedHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	rows, err := s.repo.FindByEmployeeBetween(ctx, employeeID, civilDate(from), civilDate(to))
	if err != nil {
		return decimal.Zero, err
	}

	var minutes int64
	for _, r := range rows {
		minutes += money.WholeMinutes(r.WorkedDuration())
	}
	return money.HoursFromMinutes(minutes), nil
}

func (s *service) HasCompleteRecord(ctx context.Context, employeeID uuid.UUID, t time.Time) (bool, error) {
	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, civilDate(s.schedule.DateOf(t)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return rec.IsComplete(), nil
}

func newTardiness(attendanceID uuid.UUID, kind string, minutes int64) *TardinessRecord {
	note := fmt.Sprintf("%d minutes", minutes)
	if kind == TardinessLate {
		note = "late by " + note
	} else {
		note = "left early by " + note
	}
	return &TardinessRecord{
		ID:           uuid.New(),
		AttendanceID: attendanceID,
		Minutes:      int(minutes),
		Hours:        money.HoursFromMinutes(minutes),
		Type:         kind,
		Note:         &note,
	}
}

func parseRange(employeeID string, filter DateRangeFilter) (uuid.UUID, time.Time, time.Time, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrInvalidEmployeeID
	}
	from, err := time.Parse(DateLayout, filter.From)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	to, err := time.Parse(DateLayout, filter.To)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	if to.Before(from) {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateRange
	}
	return id, from, to, nil
}

func formatTime(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	v := t.In(loc).Format(time.RFC3339)
	return &v
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
