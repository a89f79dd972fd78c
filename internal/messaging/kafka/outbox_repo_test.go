package kafka_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("rid-1", "pay_period", "pp-1", "payroll_run_completed", "payroll.run.completed.v1",
		map[string]any{"processed": 3})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, float64(3), payload["processed"])
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	badStatus := valid
	badStatus.Status = "weird"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateWithinTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event := kafka.OutboxEvent{ID: "evt-1", AggregateType: "employee", AggregateID: "emp-1", EventType: "employee_created",
		Topic: "topic", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("evt-1", "", "employee", "emp-1", "employee_created", "topic", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	err = repo.Create(context.Background(), kafka.OutboxEvent{ID: "x"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("evt-1", "rid", "pay_period", "pp-1", "payroll_run_requested", "topic", []byte(`{}`), kafka.OutboxStatusPending, 0, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "pp-1", events[0].AggregateID)
	assert.Equal(t, "rid", events[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-2", kafka.OutboxStatusFailed, "broker down").
		WillReturnError(sql.ErrConnDone)
	err = repo.MarkFailed(context.Background(), "evt-2", "broker down")
	assert.True(t, errors.Is(err, sql.ErrConnDone))

	assert.NoError(t, mock.ExpectationsWereMet())
}
