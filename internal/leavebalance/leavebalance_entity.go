package leavebalance

import (
	"time"

	"github.com/google/uuid"
)

// LeaveBalance is the entitlement ledger for one (employee, leave type, year).
// RemainingDays is stored for querying but always written together with
// UsedDays or CarryOverDays as TotalDays + CarryOverDays - UsedDays.
type LeaveBalance struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_key,priority:1"`
	LeaveTypeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_key,priority:2"`
	Year          int       `gorm:"not null;uniqueIndex:uq_leave_balance_key,priority:3"`
	TotalDays     int       `gorm:"not null;default:0"`
	CarryOverDays int       `gorm:"not null;default:0"`
	UsedDays      int       `gorm:"not null;default:0"`
	RemainingDays int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func remaining(total, carryOver, used int) int {
	return total + carryOver - used
}
