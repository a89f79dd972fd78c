package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_employee_number"`
	FullName       string          `gorm:"type:varchar(150);not null"`
	DepartmentID   *uuid.UUID      `gorm:"type:uuid;index"`
	PositionID     *uuid.UUID      `gorm:"type:uuid;index"`
	SupervisorID   *uuid.UUID      `gorm:"type:uuid;index"`
	BasicSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HourlyRate     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SalaryChange is the history row written by every salary update.
type SalaryChange struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OldBasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NewBasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OldHourlyRate  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NewHourlyRate  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EffectiveDate  time.Time       `gorm:"type:date;not null"`
	ChangedBy      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time
}

func (SalaryChange) TableName() string {
	return "employee_salary_changes"
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusOnLeave, StatusTerminated:
		return true
	default:
		return false
	}
}
