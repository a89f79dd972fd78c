package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TardinessLate      = "LATE"
	TardinessUndertime = "UNDERTIME"

	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// AttendanceRecord is one employee's day. AttendanceDate holds the calendar
// day as UTC midnight.
type AttendanceRecord struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time         `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	TimeIn         *time.Time        `gorm:"type:timestamptz"`
	TimeOut        *time.Time        `gorm:"type:timestamptz"`
	Tardiness      []TardinessRecord `gorm:"foreignKey:AttendanceID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (a AttendanceRecord) IsComplete() bool {
	return a.TimeIn != nil && a.TimeOut != nil
}

// WorkedDuration is zero for incomplete records.
func (a AttendanceRecord) WorkedDuration() time.Duration {
	if !a.IsComplete() || a.TimeOut.Before(*a.TimeIn) {
		return 0
	}
	return a.TimeOut.Sub(*a.TimeIn)
}

type TardinessRecord struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AttendanceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Minutes      int             `gorm:"not null"`
	Hours        decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Type         string          `gorm:"type:varchar(16);not null"`
	Note         *string         `gorm:"type:text"`
	CreatedAt    time.Time
}

func (TardinessRecord) TableName() string {
	return "tardiness_records"
}

// civilDate keeps the calendar fields of t and drops the zone.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
