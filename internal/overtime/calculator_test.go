package overtime_test

import (
	"testing"
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/overtime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newCalculator(loc *time.Location) *overtime.Calculator {
	return overtime.NewCalculator(config.MustDefaultRules().Overtime, loc)
}

func TestCalculator_Pay(t *testing.T) {
	calc := newCalculator(time.UTC)
	rate := decimal.NewFromInt(100)
	two := decimal.NewFromInt(2)

	tests := []struct {
		name           string
		night, weekend bool
		wantMultiplier string
		wantPay        string
	}{
		{name: "weekday day", wantMultiplier: "1.50", wantPay: "300.00"},
		{name: "night", night: true, wantMultiplier: "1.60", wantPay: "320.00"},
		{name: "weekend", weekend: true, wantMultiplier: "1.80", wantPay: "360.00"},
		{name: "night and weekend are additive", night: true, weekend: true, wantMultiplier: "1.90", wantPay: "380.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := overtime.OvertimeRequest{Hours: two, IsNightShift: tt.night, IsWeekend: tt.weekend}
			assert.Equal(t, tt.wantMultiplier, calc.Multiplier(tt.night, tt.weekend).StringFixed(2))
			assert.Equal(t, tt.wantPay, calc.Pay(req, rate).StringFixed(2))
		})
	}

	t.Run("rounds half up to cents", func(t *testing.T) {
		req := overtime.OvertimeRequest{Hours: decimal.RequireFromString("1.33")}
		assert.Equal(t, "246.28", calc.Pay(req, decimal.RequireFromString("123.45")).StringFixed(2))
	})

	t.Run("zero rate or hours", func(t *testing.T) {
		assert.True(t, calc.Pay(overtime.OvertimeRequest{Hours: two}, decimal.Zero).IsZero())
		assert.True(t, calc.Pay(overtime.OvertimeRequest{}, rate).IsZero())
	})
}

func TestCalculator_IsNightShift(t *testing.T) {
	calc := newCalculator(time.UTC)
	at := func(d, h, m int) time.Time { return time.Date(2026, 3, d, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"evening before the window", at(3, 18, 0), at(3, 20, 0), false},
		{"ends exactly at window start", at(3, 21, 0), at(3, 22, 0), false},
		{"runs into the window", at(3, 21, 0), at(3, 22, 30), true},
		{"crosses midnight", at(3, 23, 0), at(4, 1, 0), true},
		{"early morning", at(4, 5, 0), at(4, 6, 30), true},
		{"starts at window end", at(4, 6, 0), at(4, 8, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.IsNightShift(tt.start, tt.end))
		})
	}
}

func TestCalculator_Location(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	assert.NoError(t, err)
	calc := newCalculator(manila)

	// Friday 17:00 UTC is Saturday 01:00 in Manila.
	start := time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)
	assert.True(t, calc.IsWeekend(start))
	assert.True(t, calc.IsNightShift(start, start.Add(time.Hour)))
	assert.False(t, newCalculator(time.UTC).IsWeekend(start))
}

func TestCalculator_WeekStart(t *testing.T) {
	calc := newCalculator(time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, monday.Equal(calc.WeekStart(time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC))))
	assert.True(t, monday.Equal(calc.WeekStart(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))))
	assert.True(t, monday.AddDate(0, 0, 7).Equal(calc.WeekStart(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))))
}
