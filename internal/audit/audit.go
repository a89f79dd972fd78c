// Package audit records who did what to which workflow object.
package audit

import (
	"context"
	"time"

	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	OutcomeSuccess  = "SUCCESS"
	OutcomeRejected = "REJECTED"
	OutcomeFailed   = "FAILED"
)

type Entry struct {
	Component string
	Action    string
	ActorID   string
	Outcome   string
	Message   string
	Timestamp time.Time
	Meta      map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// ZapLogger writes audit entries as structured log lines on the "audit" logger.
type ZapLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapLogger(logger ...*zap.Logger) *ZapLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapLogger{logger: l, now: time.Now}
}

func (l *ZapLogger) Log(ctx context.Context, entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now().UTC()
	}
	if entry.ActorID == "" {
		entry.ActorID = contextutil.GetEmployeeID(ctx)
	}
	if entry.Outcome == "" {
		entry.Outcome = OutcomeSuccess
	}

	l.logger.Info("audit event",
		zap.String("timestamp", entry.Timestamp.Format(time.RFC3339)),
		zap.String("component", entry.Component),
		zap.String("action", entry.Action),
		zap.String("actor_id", entry.ActorID),
		zap.String("outcome", entry.Outcome),
		zap.String("message", entry.Message),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Any("meta", entry.Meta),
	)
}

// Outcome classifies an operation result for an audit entry.
func Outcome(err error, business func(error) bool) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case business != nil && business(err):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, Entry) {}

// Nop discards every entry.
func Nop() Logger {
	return nopLogger{}
}
