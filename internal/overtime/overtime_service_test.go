package overtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/overtime"
	overtimeerrors "go-payroll/internal/overtime/errors"
	overtimeMock "go-payroll/internal/overtime/mock"
	"go-payroll/internal/shared/approval"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type auditRecorder struct {
	entries []audit.Entry
}

func (r *auditRecorder) Log(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

type fixture struct {
	svc        overtime.Service
	repo       *overtimeMock.MockRepository
	attendance *overtimeMock.MockAttendanceChecker
	employees  *overtimeMock.MockEmployeeDirectory
	sql        sqlmock.Sqlmock
	audit      *auditRecorder
}

var now = time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := fixture{
		repo:       overtimeMock.NewMockRepository(ctrl),
		attendance: overtimeMock.NewMockAttendanceChecker(ctrl),
		employees:  overtimeMock.NewMockEmployeeDirectory(ctrl),
		sql:        mock,
		audit:      &auditRecorder{},
	}
	f.svc = overtime.NewService(db, f.repo, overtime.Dependencies{
		Attendance: f.attendance,
		Employees:  f.employees,
		Audit:      f.audit,
		Now:        func() time.Time { return now },
	}, config.MustDefaultRules())
	return f
}

func window(start, end string) overtime.SubmitOvertimeRequest {
	return overtime.SubmitOvertimeRequest{StartTime: start, EndTime: end, Reason: "release"}
}

func TestOvertimeService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("persists pending request with computed hours", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectCommit()

		var created *overtime.OvertimeRequest
		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
				assert.True(t, weekStart.Equal(from))
				assert.True(t, weekStart.AddDate(0, 0, 7).Equal(to))
				return decimal.NewFromInt(18), nil
			})
		f.repo.EXPECT().HasOverlap(ctx, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *overtime.OvertimeRequest) error {
			created = o
			return nil
		})

		resp, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-03T17:30:00Z", "2026-03-03T19:30:00Z"))

		assert.NoError(t, err)
		assert.Equal(t, "2.00", resp.Hours)
		assert.Equal(t, approval.StatusPending, resp.Status)
		assert.False(t, created.IsNightShift)
		assert.False(t, created.IsWeekend)
		assert.Equal(t, audit.OutcomeSuccess, f.audit.entries[0].Outcome)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("weekend night request is flagged", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectCommit()

		var created *overtime.OvertimeRequest
		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
		f.repo.EXPECT().HasOverlap(ctx, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *overtime.OvertimeRequest) error {
			created = o
			return nil
		})

		resp, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-07T21:00:00Z", "2026-03-07T23:00:00Z"))

		assert.NoError(t, err)
		assert.True(t, resp.IsWeekend)
		assert.True(t, resp.IsNightShift)
		assert.True(t, created.IsWeekend)
	})

	t.Run("weekly limit", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("18.50"), nil)

		_, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-03T17:30:00Z", "2026-03-03T19:30:00Z"))

		assert.ErrorIs(t, err, overtimeerrors.ErrWeeklyLimitExceeded)
		assert.Equal(t, audit.OutcomeRejected, f.audit.entries[0].Outcome)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("overlap", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
		f.repo.EXPECT().HasOverlap(ctx, employeeID, gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-03T17:30:00Z", "2026-03-03T18:30:00Z"))

		assert.ErrorIs(t, err, overtimeerrors.ErrOvertimeOverlap)
	})

	t.Run("incomplete attendance", func(t *testing.T) {
		f := setup(t)
		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(false, nil)

		_, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-03T17:30:00Z", "2026-03-03T18:30:00Z"))

		assert.ErrorIs(t, err, overtimeerrors.ErrAttendanceRequired)
	})

	t.Run("attendance lookup failure", func(t *testing.T) {
		f := setup(t)
		f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(false, errors.New("db down"))

		_, err := f.svc.Submit(ctx, employeeID.String(), window("2026-03-03T17:30:00Z", "2026-03-03T18:30:00Z"))

		assert.Error(t, err)
		assert.Equal(t, audit.OutcomeFailed, f.audit.entries[0].Outcome)
	})

	t.Run("window gates", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end string
			want       error
		}{
			{"end equals start", "2026-03-03T18:00:00Z", "2026-03-03T18:00:00Z", overtimeerrors.ErrInvalidTimeRange},
			{"end before start", "2026-03-03T18:00:00Z", "2026-03-03T17:00:00Z", overtimeerrors.ErrInvalidTimeRange},
			{"under thirty minutes", "2026-03-03T18:00:00Z", "2026-03-03T18:29:00Z", overtimeerrors.ErrDurationTooShort},
			{"over four hours", "2026-03-03T18:00:00Z", "2026-03-03T22:01:00Z", overtimeerrors.ErrDailyLimitExceeded},
			{"bad format", "2026-03-03 18:00", "2026-03-03T19:00:00Z", overtimeerrors.ErrInvalidTimeFormat},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setup(t)
				_, err := f.svc.Submit(ctx, employeeID.String(), window(tt.start, tt.end))
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("window boundaries are accepted", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end string
			hours      string
		}{
			{"exactly thirty minutes", "2026-03-03T18:00:00Z", "2026-03-03T18:30:00Z", "0.50"},
			{"exactly four hours ending at night start", "2026-03-03T18:00:00Z", "2026-03-03T22:00:00Z", "4.00"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setup(t)
				f.sql.ExpectBegin()
				f.sql.ExpectCommit()

				var created *overtime.OvertimeRequest
				f.attendance.EXPECT().HasCompleteRecord(ctx, employeeID, gomock.Any()).Return(true, nil)
				f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
				f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
				f.repo.EXPECT().HasOverlap(ctx, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *overtime.OvertimeRequest) error {
					created = o
					return nil
				})

				resp, err := f.svc.Submit(ctx, employeeID.String(), window(tt.start, tt.end))

				assert.NoError(t, err)
				assert.Equal(t, tt.hours, resp.Hours)
				assert.False(t, resp.IsNightShift)
				assert.False(t, created.IsNightShift)
				assert.NoError(t, f.sql.ExpectationsWereMet())
			})
		}
	})
}

func pendingOvertime(employeeID uuid.UUID) *overtime.OvertimeRequest {
	return &overtime.OvertimeRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartTime:  time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC),
		Hours:      decimal.NewFromInt(2),
		IsWeekend:  true,
		Status:     approval.StatusPending,
	}
}

func TestOvertimeService_Approve(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	approverID := uuid.New()

	t.Run("returns computed pay", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectCommit()

		o := pendingOvertime(employeeID)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindByID(ctx, o.ID).Return(o, nil)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(10), nil)
		f.employees.EXPECT().FindByID(ctx, employeeID).
			Return(&employee.Employee{ID: employeeID, HourlyRate: decimal.NewFromInt(100)}, nil)
		f.repo.EXPECT().Decide(ctx, o.ID, approval.StatusApproved, approverID, gomock.Any(), now).Return(true, nil)

		resp, err := f.svc.Approve(ctx, o.ID.String(), approverID.String(), "")

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusApproved, resp.Status)
		assert.Equal(t, "1.80", *resp.Multiplier)
		assert.Equal(t, "360.00", *resp.Pay)
		assert.Equal(t, "360.00", f.audit.entries[0].Meta["pay"])
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("weekly limit filled since submission", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		o := pendingOvertime(employeeID)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindByID(ctx, o.ID).Return(o, nil)
		f.repo.EXPECT().ApprovedHoursBetween(ctx, employeeID, gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(19), nil)

		_, err := f.svc.Approve(ctx, o.ID.String(), approverID.String(), "")

		assert.ErrorIs(t, err, overtimeerrors.ErrWeeklyLimitExceeded)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("already processed", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		o := pendingOvertime(employeeID)
		o.Status = approval.StatusApproved
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindByID(ctx, o.ID).Return(o, nil)

		_, err := f.svc.Approve(ctx, o.ID.String(), approverID.String(), "")

		assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		id := uuid.New()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.Approve(ctx, id.String(), approverID.String(), "")

		assert.ErrorIs(t, err, overtimeerrors.ErrOvertimeNotFound)
	})
}

func TestOvertimeService_Reject(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	approverID := uuid.New()

	t.Run("missing notes", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Reject(ctx, uuid.NewString(), approverID.String(), "")
		assert.ErrorIs(t, err, approval.ErrMissingReason)
	})

	t.Run("rejected", func(t *testing.T) {
		f := setup(t)
		f.sql.ExpectBegin()
		f.sql.ExpectCommit()

		o := pendingOvertime(employeeID)
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().FindByID(ctx, o.ID).Return(o, nil)
		f.repo.EXPECT().Decide(ctx, o.ID, approval.StatusRejected, approverID, gomock.Any(), now).Return(true, nil)

		resp, err := f.svc.Reject(ctx, o.ID.String(), approverID.String(), "not needed")

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusRejected, resp.Status)
		assert.Nil(t, resp.Pay)
	})
}

func TestOvertimeService_ApprovedPay(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	f := setup(t)
	f.repo.EXPECT().FindApprovedStartingBetween(ctx, employeeID, from, to).Return([]overtime.OvertimeRequest{
		{Hours: decimal.NewFromInt(2)},
		{Hours: decimal.NewFromInt(1), IsNightShift: true},
	}, nil)

	pay, err := f.svc.ApprovedPay(ctx, employeeID, decimal.NewFromInt(100), from, to)

	assert.NoError(t, err)
	assert.Equal(t, "460.00", pay.StringFixed(2))
}
