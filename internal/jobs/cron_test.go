package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/jobs"
	"go-payroll/internal/leavebalance"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type initializerFunc func(ctx context.Context, year int) (leavebalance.InitializeAllResult, error)

func (f initializerFunc) InitializeYearForAll(ctx context.Context, year int) (leavebalance.InitializeAllResult, error) {
	return f(ctx, year)
}

func TestYearOpeningSpec(t *testing.T) {
	sched, err := cron.ParseStandard(jobs.YearOpeningSpec)
	assert.NoError(t, err)

	loc, err := time.LoadLocation("Asia/Manila")
	assert.NoError(t, err)

	next := sched.Next(time.Date(2026, 6, 15, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 5, 0, 0, loc), next)
}

func TestRegisterLeaveYearOpening(t *testing.T) {
	c := jobs.NewScheduler(time.UTC)
	id, err := jobs.RegisterLeaveYearOpening(c, initializerFunc(func(context.Context, int) (leavebalance.InitializeAllResult, error) {
		return leavebalance.InitializeAllResult{}, nil
	}), time.UTC, zap.NewNop())

	assert.NoError(t, err)
	assert.True(t, c.Entry(id).Valid())
	assert.Len(t, c.Entries(), 1)
}

func TestOpenLeaveYear(t *testing.T) {
	var years []int
	balances := initializerFunc(func(_ context.Context, year int) (leavebalance.InitializeAllResult, error) {
		years = append(years, year)
		if year == 2028 {
			return leavebalance.InitializeAllResult{}, errors.New("roster unavailable")
		}
		return leavebalance.InitializeAllResult{Year: year, Employees: 3, Created: 9}, nil
	})

	jobs.OpenLeaveYear(context.Background(), balances, 2027, zap.NewNop())
	jobs.OpenLeaveYear(context.Background(), balances, 2028, zap.NewNop())

	assert.Equal(t, []int{2027, 2028}, years)
}
