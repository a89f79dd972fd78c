// Package jobs schedules the periodic maintenance the worker runs.
package jobs

import (
	"context"
	"time"

	"go-payroll/internal/leavebalance"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// YearOpeningSpec fires at 00:05 on January 1st.
const YearOpeningSpec = "5 0 1 1 *"

type YearInitializer interface {
	InitializeYearForAll(ctx context.Context, year int) (leavebalance.InitializeAllResult, error)
}

// NewScheduler returns a cron evaluated in loc so "January 1st" is the
// organization's calendar day.
func NewScheduler(loc *time.Location) *cron.Cron {
	return cron.New(cron.WithLocation(loc))
}

// RegisterLeaveYearOpening opens the new year's leave balances for every active
// employee. InitializeYearForAll is idempotent, so a rerun after a crash only
// fills the gaps.
func RegisterLeaveYearOpening(c *cron.Cron, balances YearInitializer, loc *time.Location, logger *zap.Logger) (cron.EntryID, error) {
	log := logger.Named("jobs.leave_year_opening")
	return c.AddFunc(YearOpeningSpec, func() {
		OpenLeaveYear(context.Background(), balances, time.Now().In(loc).Year(), log)
	})
}

func OpenLeaveYear(ctx context.Context, balances YearInitializer, year int, log *zap.Logger) {
	started := time.Now()
	res, err := balances.InitializeYearForAll(ctx, year)
	if err != nil {
		log.Error("leave year opening failed", zap.Int("year", year), zap.Error(err))
		return
	}
	log.Info("leave year opened",
		zap.Int("year", year),
		zap.Int("employees", res.Employees),
		zap.Int("created", res.Created),
		zap.Int("failed", res.Failed),
		zap.Duration("took", time.Since(started)),
	)
}
