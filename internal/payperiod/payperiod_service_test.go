package payperiod_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	payperiodMock "go-payroll/internal/payperiod/mock"
	"go-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setup(t *testing.T) (payperiod.Service, *payperiodMock.MockRepository, sqlmock.Sqlmock) {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := payperiodMock.NewMockRepository(ctrl)
	return payperiod.NewService(db, repo), repo, mock
}

func date(s string) time.Time {
	d, _ := time.Parse(payperiod.DateLayout, s)
	return d
}

func TestPayPeriodService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, mock := setup(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountOverlapping(ctx, date("2026-04-01"), date("2026-04-15")).Return(int64(0), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, payperiod.CreatePayPeriodRequest{
			StartDate: "2026-04-01", EndDate: "2026-04-15", PayDate: "2026-04-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-04-15", resp.PayDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	tests := []struct {
		name string
		req  payperiod.CreatePayPeriodRequest
		want error
	}{
		{
			name: "end before start",
			req:  payperiod.CreatePayPeriodRequest{StartDate: "2026-04-15", EndDate: "2026-04-01", PayDate: "2026-04-20"},
			want: payperioderrors.ErrInvalidDateRange,
		},
		{
			name: "pay date before end",
			req:  payperiod.CreatePayPeriodRequest{StartDate: "2026-04-01", EndDate: "2026-04-15", PayDate: "2026-04-14"},
			want: payperioderrors.ErrInvalidPayDate,
		},
		{
			name: "malformed date",
			req:  payperiod.CreatePayPeriodRequest{StartDate: "04/01/2026", EndDate: "2026-04-15", PayDate: "2026-04-15"},
			want: apperror.ErrInvalidDateFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mock := setup(t)
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("single day period is valid", func(t *testing.T) {
		svc, repo, mock := setup(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountOverlapping(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, payperiod.CreatePayPeriodRequest{
			StartDate: "2026-04-01", EndDate: "2026-04-01", PayDate: "2026-04-01",
		})
		assert.NoError(t, err)
	})

	t.Run("overlap", func(t *testing.T) {
		svc, repo, mock := setup(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountOverlapping(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)

		_, err := svc.Create(ctx, payperiod.CreatePayPeriodRequest{
			StartDate: "2026-04-10", EndDate: "2026-04-20", PayDate: "2026-04-20",
		})
		assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodOverlap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPayPeriodService_GenerateSemiMonthly(t *testing.T) {
	ctx := context.Background()

	t.Run("february halves", func(t *testing.T) {
		svc, repo, mock := setup(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created []*payperiod.PayPeriod
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountOverlapping(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *payperiod.PayPeriod) error {
			created = append(created, p)
			return nil
		}).Times(2)

		resp, err := svc.GenerateSemiMonthly(ctx, payperiod.GenerateSemiMonthlyRequest{Year: 2028, Month: 2, PayDelayDays: 5})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "2028-02-01", resp[0].StartDate)
		assert.Equal(t, "2028-02-15", resp[0].EndDate)
		assert.Equal(t, "2028-02-20", resp[0].PayDate)
		assert.Equal(t, "2028-02-16", resp[1].StartDate)
		assert.Equal(t, "2028-02-29", resp[1].EndDate)
		assert.Equal(t, "2028-03-05", resp[1].PayDate)
		assert.Len(t, created, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second half overlapping rolls back both", func(t *testing.T) {
		svc, repo, mock := setup(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		gomock.InOrder(
			repo.EXPECT().CountOverlapping(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil),
			repo.EXPECT().Create(ctx, gomock.Any()).Return(nil),
			repo.EXPECT().CountOverlapping(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil),
		)

		_, err := svc.GenerateSemiMonthly(ctx, payperiod.GenerateSemiMonthlyRequest{Year: 2026, Month: 4})
		assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodOverlap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPayPeriodService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setup(t)

	_, err := svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, payperioderrors.ErrInvalidPayPeriodID)

	id := uuid.New()
	repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.GetByID(ctx, id.String())
	assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodNotFound)

	other := uuid.New()
	repo.EXPECT().FindByID(ctx, other).Return(nil, errors.New("conn reset"))
	_, err = svc.GetByID(ctx, other.String())
	assert.EqualError(t, err, "conn reset")
}

func TestPayPeriod_Contains(t *testing.T) {
	p := payperiod.PayPeriod{StartDate: date("2026-04-01"), EndDate: date("2026-04-15")}

	assert.True(t, p.Contains(date("2026-04-01")))
	assert.True(t, p.Contains(date("2026-04-15")))
	assert.False(t, p.Contains(date("2026-04-16")))
	assert.False(t, p.Contains(date("2026-03-31")))
}
