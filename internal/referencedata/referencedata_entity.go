package referencedata

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CategoryAnnual = "ANNUAL"
	CategorySick   = "SICK"
	CategoryOther  = "OTHER"
)

type LeaveType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_type_code" json:"code"`
	Name           string    `gorm:"type:varchar(80);not null" json:"name"`
	Category       string    `gorm:"type:varchar(10);not null;default:'OTHER'" json:"category"`
	MaxDaysPerYear int       `gorm:"not null;default:0" json:"max_days_per_year"`
	CreatedAt      time.Time `json:"created_at"`
}

// PositionBenefit is a fixed allowance paid every period to holders of a position.
type PositionBenefit struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PositionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"position_id"`
	Name       string          `gorm:"type:varchar(80);not null" json:"name"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

func IsValidCategory(c string) bool {
	switch c {
	case CategoryAnnual, CategorySick, CategoryOther:
		return true
	default:
		return false
	}
}
