package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRecord is written once per (employee, pay period) and never updated.
type PayrollRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	PayPeriodID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:2;index"`
	BasicSalary         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AttendanceEarnings  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OvertimePay         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalBenefits       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrossIncome         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PensionContribution decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HealthContribution  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HousingContribution decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WithholdingTax      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetSalary           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt           time.Time
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// PeriodTotals aggregates the records of one pay period.
type PeriodTotals struct {
	Employees       int64
	GrossIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}
