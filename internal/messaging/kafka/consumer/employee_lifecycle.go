package consumer

import (
	"context"

	"go-payroll/internal/events"
	"go-payroll/internal/leavebalance"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type BalanceInitializer interface {
	InitializeYear(ctx context.Context, employeeID uuid.UUID, year int) (leavebalance.InitializeResult, error)
}

// ConsumeEmployeeLifecycle opens leave balances for newly hired employees.
// InitializeYear is idempotent, so redelivered events are harmless.
func ConsumeEmployeeLifecycle(ctx context.Context, reader MessageReader, balances BalanceInitializer, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeCreatedEvent
		if err := decode(msg, &event, log); err != nil {
			return err
		}
		if event.EventType != events.EmployeeCreatedEventType {
			return errSkip
		}

		employeeID, err := uuid.Parse(event.EmployeeID)
		if err != nil {
			log.Warn("employee_created event with invalid employee id", zap.String("employee_id", event.EmployeeID))
			return errSkip
		}
		year := event.HiredYear
		if year == 0 {
			year = event.OccurredAt.Year()
		}

		res, err := balances.InitializeYear(ctx, employeeID, year)
		if err != nil {
			return err
		}

		log.Info("leave balances initialized from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
			zap.Int("year", year),
			zap.Int("created", res.Created),
		)
		return nil
	})
}
