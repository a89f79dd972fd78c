package payperiod

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// PayPeriod is immutable once created. Dates carry no time of day.
type PayPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate   time.Time `gorm:"type:date;not null;index"`
	EndDate     time.Time `gorm:"type:date;not null;index"`
	PayDate     time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:varchar(120)"`
	CreatedAt   time.Time
}

func (PayPeriod) TableName() string {
	return "pay_periods"
}

// Contains reports whether day falls inside the period, both ends inclusive.
func (p PayPeriod) Contains(day time.Time) bool {
	d := day.Format(DateLayout)
	return d >= p.StartDate.Format(DateLayout) && d <= p.EndDate.Format(DateLayout)
}
