package audit_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/audit"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := audit.NewZapLogger(zap.New(core))

	ctx := contextutil.WithEmployeeID(context.Background(), "emp-7")
	ctx = contextutil.WithRequestID(ctx, "rid-7")

	l.Log(ctx, audit.Entry{
		Component: "leave",
		Action:    "APPROVE",
		Message:   "leave approved",
		Meta:      map[string]any{"leave_id": "l-1"},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "leave", fields["component"])
	assert.Equal(t, "APPROVE", fields["action"])
	assert.Equal(t, "emp-7", fields["actor_id"])
	assert.Equal(t, audit.OutcomeSuccess, fields["outcome"])
	assert.Equal(t, "rid-7", fields["request_id"])
	assert.NotEmpty(t, fields["timestamp"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, audit.OutcomeSuccess, audit.Outcome(nil, apperror.IsBusiness))
	assert.Equal(t, audit.OutcomeRejected, audit.Outcome(apperror.ErrInvalidInput, apperror.IsBusiness))
	assert.Equal(t, audit.OutcomeFailed, audit.Outcome(errors.New("db down"), apperror.IsBusiness))
}
