package producer

import (
	"context"
	"time"

	"go-payroll/internal/messaging/kafka"

	"go.uber.org/zap"
)

const defaultBatchSize = 50

// ProcessOutboxEvents polls the outbox and publishes pending events until ctx
// is done.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := PublishPending(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// PublishPending sends one batch and returns how many events were marked sent.
// A failed publish is marked for retry and does not stop the batch.
func PublishPending(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger) (int, error) {
	pending, err := repo.ListPending(ctx, defaultBatchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(pending)))

	sent := 0
	for _, event := range pending {
		log := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			log.Error("publish outbox event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox failed failed", zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		sent++
		log.Info("outbox event sent")
	}
	return sent, nil
}
