package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-payroll/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	r, err := config.DefaultRules()

	assert.NoError(t, err)
	assert.Equal(t, 15, r.Schedule.GraceMinutes)
	assert.Equal(t, 15, r.Leave.AnnualDefaultDays)
	assert.Equal(t, 10, r.Leave.SickDefaultDays)
	assert.Equal(t, 60, r.Leave.MaxAdvanceDays)
	assert.Equal(t, "1.5", r.Overtime.BaseMultiplier.String())
	assert.Equal(t, 30, r.Overtime.MinMinutes)
	assert.Equal(t, 240, r.Overtime.MaxDailyMinutes)
	assert.Len(t, r.Deductions.TaxBrackets, 6)
	assert.Nil(t, r.Deductions.TaxBrackets[5].Max)
	assert.Len(t, r.Deductions.Contributions, 3)
	assert.NotNil(t, r.Deductions.Contributions[2].Cap)
	assert.Equal(t, time.UTC, r.Location())
}

func TestSchedule_Clock(t *testing.T) {
	r := config.MustDefaultRules()
	day := time.Date(2026, 3, 2, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), r.Schedule.StartOn(day))
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), r.Schedule.EndOn(day))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), r.Schedule.DateOf(day))
	assert.Equal(t, 15*time.Minute, r.Schedule.Grace())
}

func TestLoadRules_TimezoneOverride(t *testing.T) {
	r, err := config.LoadRules("", "Asia/Manila")

	assert.NoError(t, err)
	assert.Equal(t, "Asia/Manila", r.Location().String())

	day := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, 8, r.Schedule.StartOn(day).Hour())
	assert.Equal(t, 2, r.Schedule.DateOf(day).Day())
}

func TestLoadRules_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
timezone: UTC
schedule: { start: "09:00", end: "18:00", grace_minutes: 10 }
leave: { annual_default_days: 12, sick_default_days: 8, max_advance_days: 30, max_backdate_days: 1 }
overtime:
  base_multiplier: 1.25
  min_minutes: 30
  max_daily_minutes: 180
  max_weekly_hours: 12
  night_start_hour: 22
  night_end_hour: 6
deductions:
  tax_brackets:
    - { min: 0, max: 10000, rate: 0, base: 0 }
    - { min: 10000, rate: 0.1, base: 0 }
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := config.LoadRules(path, "")

	assert.NoError(t, err)
	assert.Equal(t, 10, r.Schedule.GraceMinutes)
	assert.Equal(t, 12, r.Leave.AnnualDefaultDays)
	assert.Equal(t, "1.25", r.Overtime.BaseMultiplier.String())
	assert.Len(t, r.Deductions.TaxBrackets, 2)
}

func TestParseRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bad yaml", raw: "schedule: ["},
		{name: "end before start", raw: `
schedule: { start: "17:00", end: "08:00" }
overtime: { base_multiplier: 1.5, min_minutes: 30, max_daily_minutes: 240, max_weekly_hours: 20 }
deductions: { tax_brackets: [ { min: 0, rate: 0, base: 0 } ] }
`},
		{name: "bracket gap", raw: `
schedule: { start: "08:00", end: "17:00" }
overtime: { base_multiplier: 1.5, min_minutes: 30, max_daily_minutes: 240, max_weekly_hours: 20 }
deductions:
  tax_brackets:
    - { min: 0, max: 100, rate: 0, base: 0 }
    - { min: 200, rate: 0.1, base: 0 }
`},
		{name: "unknown timezone", raw: `
timezone: Mars/Olympus
schedule: { start: "08:00", end: "17:00" }
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseRules([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
