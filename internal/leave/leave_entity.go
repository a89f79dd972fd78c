package leave

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type LeaveRequest struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID     uuid.UUID  `gorm:"type:uuid;not null"`
	StartDate       time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate         time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays       int        `gorm:"not null"`
	Reason          string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApproverID      *uuid.UUID `gorm:"type:uuid"`
	SupervisorNotes *string    `gorm:"type:text"`
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// inclusiveDays counts calendar days from start to end, both included.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
