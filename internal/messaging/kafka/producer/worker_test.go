package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	written []kafkago.Message
	failOn  string
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failOn {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestPublishPending(t *testing.T) {
	ctx := context.Background()

	t.Run("failed publish is scheduled for retry", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &recordingWriter{failOn: "period-2"}
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "period-1", Topic: events.PayrollRunRequestedTopic, EventType: events.PayrollRunRequestedEventType, RequestID: "rid", Payload: []byte(`{}`)},
			{ID: "e2", AggregateID: "period-2", Topic: events.PayrollRunRequestedTopic, EventType: events.PayrollRunRequestedEventType, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "e2", "broker unavailable").Return(nil)

		sent, err := producer.PublishPending(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, events.PayrollRunRequestedTopic, msg.Topic)
		assert.Equal(t, "period-1", string(msg.Key))
		assert.Len(t, msg.Headers, 3)
		assert.Equal(t, "request_id", msg.Headers[2].Key)
	})

	t.Run("empty outbox", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		repo.EXPECT().ListPending(ctx, 50).Return(nil, nil)

		sent, err := producer.PublishPending(ctx, repo, &recordingWriter{}, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.PublishPending(ctx, repo, &recordingWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
