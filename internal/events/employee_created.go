package events

import "time"

const (
	EmployeeCreatedTopic     = "payroll.employee.lifecycle.v1"
	EmployeeCreatedEventType = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	HiredYear  int       `json:"hired_year"`
	OccurredAt time.Time `json:"occurred_at"`
}
