package consumer

import (
	"context"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PayrollRunner interface {
	ProcessPayrollForPeriod(ctx context.Context, periodID string) (payroll.RunResult, error)
}

// ConsumePayrollRunRequested runs the batch for each queued pay period. Runs
// are idempotent per employee, so a redelivered request only skips.
func ConsumePayrollRunRequested(ctx context.Context, reader MessageReader, runner PayrollRunner, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.payroll_run")
	log.Info("payroll run consumer started")

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollRunRequestedEvent
		if err := decode(msg, &event, log); err != nil {
			return err
		}

		runCtx := contextutil.WithRequestID(ctx, event.RequestID)
		runCtx = contextutil.WithEmployeeID(runCtx, event.RequestedBy)

		result, err := runner.ProcessPayrollForPeriod(runCtx, event.PayPeriodID)
		if err != nil {
			if apperror.IsBusiness(err) {
				log.Warn("payroll run request rejected",
					zap.String("pay_period_id", event.PayPeriodID),
					zap.Error(err),
				)
				return errSkip
			}
			return err
		}

		log.Info("payroll run finished from request",
			zap.String("pay_period_id", event.PayPeriodID),
			zap.String("request_id", event.RequestID),
			zap.Bool("success", result.Success),
			zap.Int("processed", result.Processed),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
		)
		return nil
	})
}
