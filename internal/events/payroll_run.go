package events

import "time"

const (
	PayrollRunRequestedTopic     = "payroll.run.requested.v1"
	PayrollRunRequestedEventType = "payroll_run_requested"

	PayrollRunCompletedTopic     = "payroll.run.completed.v1"
	PayrollRunCompletedEventType = "payroll_run_completed"
)

// PayrollRunRequestedEvent asks the consumer to process a whole pay period.
type PayrollRunRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayPeriodID string    `json:"pay_period_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PayrollRunCompletedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayPeriodID string    `json:"pay_period_id"`
	Success     bool      `json:"success"`
	Processed   int       `json:"processed"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
	OccurredAt  time.Time `json:"occurred_at"`
}
