package overtime

import (
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

// Calculator prices overtime and classifies its window.
// Bonuses are added to the base multiplier, never compounded.
type Calculator struct {
	rules    config.OvertimeRules
	location *time.Location
}

func NewCalculator(rules config.OvertimeRules, location *time.Location) *Calculator {
	if location == nil {
		location = time.UTC
	}
	return &Calculator{rules: rules, location: location}
}

func (c *Calculator) Multiplier(night, weekend bool) decimal.Decimal {
	m := c.rules.BaseMultiplier
	if night {
		m = m.Add(c.rules.NightShiftBonus)
	}
	if weekend {
		m = m.Add(c.rules.WeekendBonus)
	}
	return m
}

// Pay is hours x hourly rate x multiplier, rounded to cents.
func (c *Calculator) Pay(req OvertimeRequest, hourlyRate decimal.Decimal) decimal.Decimal {
	if req.Hours.IsZero() || hourlyRate.IsZero() {
		return decimal.Zero
	}
	return money.Round2(req.Hours.Mul(hourlyRate).Mul(c.Multiplier(req.IsNightShift, req.IsWeekend)))
}

// IsWeekend reports whether start falls on Saturday or Sunday.
func (c *Calculator) IsWeekend(start time.Time) bool {
	switch start.In(c.location).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// IsNightShift reports whether [start, end) intersects any night window.
func (c *Calculator) IsNightShift(start, end time.Time) bool {
	s := start.In(c.location)
	e := end.In(c.location)

	day := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, c.location).AddDate(0, 0, -1)
	for !day.After(e) {
		nightStart := day.Add(time.Duration(c.rules.NightStartHour) * time.Hour)
		nightEnd := day.Add(time.Duration(c.rules.NightEndHour) * time.Hour)
		if c.rules.NightEndHour <= c.rules.NightStartHour {
			nightEnd = day.AddDate(0, 0, 1).Add(time.Duration(c.rules.NightEndHour) * time.Hour)
		}
		if s.Before(nightEnd) && e.After(nightStart) {
			return true
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}

// WeekStart returns Monday 00:00 of the week containing t.
func (c *Calculator) WeekStart(t time.Time) time.Time {
	d := t.In(c.location)
	offset := (int(d.Weekday()) + 6) % 7
	return time.Date(d.Year(), d.Month(), d.Day()-offset, 0, 0, 0, 0, c.location)
}
