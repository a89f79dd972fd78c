// Package money holds the rounding rules shared by every pay calculation.
package money

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	sixty = decimal.NewFromInt(60)
	two   = decimal.NewFromInt(2)
)

// Round2 rounds half-up (away from zero) to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// HoursFromMinutes converts whole minutes to hours rounded to 2 decimals.
func HoursFromMinutes(minutes int64) decimal.Decimal {
	if minutes <= 0 {
		return decimal.Zero
	}
	return Round2(decimal.NewFromInt(minutes).Div(sixty))
}

// WholeMinutes truncates a duration to whole minutes.
func WholeMinutes(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// HoursBetween returns end - start in hours, counted in whole minutes.
func HoursBetween(start, end time.Time) decimal.Decimal {
	return HoursFromMinutes(WholeMinutes(end.Sub(start)))
}

// SemiMonthly returns the per-period share of a monthly amount.
func SemiMonthly(monthly decimal.Decimal) decimal.Decimal {
	return Round2(monthly.Div(two))
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
