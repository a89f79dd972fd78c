package app

import (
	"context"
	"fmt"

	"go-payroll/internal/audit"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "go-payroll"

// RunConsumer handles employee lifecycle events and queued payroll runs.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rules, err := config.LoadRules(cfg.RulesPath, cfg.Timezone)
	if err != nil {
		return err
	}

	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	svcs, err := buildServices(sqlDB, gormDB, nil, rules, audit.NewZapLogger())
	if err != nil {
		return err
	}

	lifecycleReader := newReader(cfg.KafkaBroker, events.EmployeeCreatedTopic, consumerGroupID+"-leave-balance")
	defer lifecycleReader.Close()
	runReader := newReader(cfg.KafkaBroker, events.PayrollRunRequestedTopic, consumerGroupID+"-payroll-run")
	defer runReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, svcs.balances, logger)
	go consumer.ConsumePayrollRunRequested(ctx, runReader, svcs.payroll, logger)

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig))
	cancel()

	return nil
}

// newReader commits explicitly: a message is committed only after it was handled.
func newReader(broker, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
