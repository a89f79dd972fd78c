package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OvertimeRequest struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_overtime_employee_start,priority:1"`
	StartTime       time.Time       `gorm:"type:timestamptz;not null;index:idx_overtime_employee_start,priority:2"`
	EndTime         time.Time       `gorm:"type:timestamptz;not null"`
	Hours           decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Reason          string          `gorm:"type:text"`
	IsNightShift    bool            `gorm:"not null;default:false"`
	IsWeekend       bool            `gorm:"not null;default:false"`
	Status          string          `gorm:"type:varchar(10);not null;default:'PENDING';index"`
	ApproverID      *uuid.UUID      `gorm:"type:uuid"`
	SupervisorNotes *string         `gorm:"type:text"`
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OvertimeRequest) TableName() string {
	return "overtime_requests"
}
