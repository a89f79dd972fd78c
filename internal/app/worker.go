package app

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/jobs"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/producer"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox to kafka and runs the scheduled jobs.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	svcs, err := buildServices(sqlDB, gormDB, nil, rules, audit.NewZapLogger())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), kafkaWriter, logger, 3*time.Second)

	scheduler := jobs.NewScheduler(rules.Location())
	if _, err := jobs.RegisterLeaveYearOpening(scheduler, svcs.balances, rules.Location(), logger); err != nil {
		return err
	}
	scheduler.Start()

	sig := bootstrap.WaitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig))

	cancel()
	<-scheduler.Stop().Done()
	return nil
}
