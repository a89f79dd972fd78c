package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/leavebalance"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payroll"
	payperioderrors "go-payroll/internal/payperiod/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages and cancels the loop once drained.
type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func newReader(t *testing.T, values ...[]byte) (*fakeReader, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r := &fakeReader{cancel: cancel}
	for i, v := range values {
		r.queue = append(r.queue, kafkago.Message{Offset: int64(i), Value: v})
	}
	return r, ctx
}

func mustJSON(t *testing.T, v any) []byte {
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return raw
}

type balanceInitializerFunc func(ctx context.Context, employeeID uuid.UUID, year int) (leavebalance.InitializeResult, error)

func (f balanceInitializerFunc) InitializeYear(ctx context.Context, employeeID uuid.UUID, year int) (leavebalance.InitializeResult, error) {
	return f(ctx, employeeID, year)
}

type payrollRunnerFunc func(ctx context.Context, periodID string) (payroll.RunResult, error)

func (f payrollRunnerFunc) ProcessPayrollForPeriod(ctx context.Context, periodID string) (payroll.RunResult, error) {
	return f(ctx, periodID)
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	hired := uuid.New()
	failing := uuid.New()
	reader, ctx := newReader(t,
		mustJSON(t, events.EmployeeCreatedEvent{EventType: events.EmployeeCreatedEventType, EmployeeID: hired.String(), HiredYear: 2026}),
		[]byte("{not json"),
		mustJSON(t, events.EmployeeCreatedEvent{EventType: events.EmployeeCreatedEventType, EmployeeID: "bad"}),
		mustJSON(t, events.EmployeeCreatedEvent{EventType: events.EmployeeCreatedEventType, EmployeeID: failing.String(), HiredYear: 2026}),
		mustJSON(t, events.EmployeeCreatedEvent{EventType: "employee_terminated", EmployeeID: hired.String()}),
	)

	var initialized []uuid.UUID
	balances := balanceInitializerFunc(func(_ context.Context, id uuid.UUID, year int) (leavebalance.InitializeResult, error) {
		assert.Equal(t, 2026, year)
		if id == failing {
			return leavebalance.InitializeResult{}, errors.New("db down")
		}
		initialized = append(initialized, id)
		return leavebalance.InitializeResult{Created: 3}, nil
	})

	consumer.ConsumeEmployeeLifecycle(ctx, reader, balances, zap.NewNop())

	assert.Equal(t, []uuid.UUID{hired}, initialized)
	// offset 3 failed on storage and stays uncommitted
	assert.Equal(t, []int64{0, 1, 2, 4}, reader.committed)
}

func TestConsumePayrollRunRequested(t *testing.T) {
	periodID := uuid.NewString()
	missing := uuid.NewString()
	requester := uuid.NewString()
	reader, ctx := newReader(t,
		mustJSON(t, events.PayrollRunRequestedEvent{PayPeriodID: periodID, RequestID: "rid-1", RequestedBy: requester, OccurredAt: time.Now()}),
		mustJSON(t, events.PayrollRunRequestedEvent{PayPeriodID: missing}),
		mustJSON(t, events.PayrollRunRequestedEvent{PayPeriodID: "flaky"}),
	)

	var runs []string
	runner := payrollRunnerFunc(func(ctx context.Context, id string) (payroll.RunResult, error) {
		switch id {
		case missing:
			return payroll.RunResult{}, payperioderrors.ErrPayPeriodNotFound
		case "flaky":
			return payroll.RunResult{}, errors.New("roster lookup failed")
		}
		assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
		assert.Equal(t, requester, contextutil.GetEmployeeID(ctx))
		runs = append(runs, id)
		return payroll.RunResult{PayPeriodID: id, Success: true, Processed: 4}, nil
	})

	consumer.ConsumePayrollRunRequested(ctx, reader, runner, zap.NewNop())

	assert.Equal(t, []string{periodID}, runs)
	assert.Equal(t, []int64{0, 1}, reader.committed)
}
