package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"go-payroll/internal/deduction"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed payroll_rules.yaml
var defaultRules []byte

type Rules struct {
	Timezone   string         `yaml:"timezone"`
	Schedule   Schedule       `yaml:"schedule"`
	Leave      LeaveRules     `yaml:"leave"`
	Overtime   OvertimeRules  `yaml:"overtime"`
	Deductions DeductionRules `yaml:"deductions"`
}

type LeaveRules struct {
	AnnualDefaultDays int `yaml:"annual_default_days"`
	SickDefaultDays   int `yaml:"sick_default_days"`
	MaxAdvanceDays    int `yaml:"max_advance_days"`
	MaxBackdateDays   int `yaml:"max_backdate_days"`
	MaxCarryOverDays  int `yaml:"max_carry_over_days"`
}

type OvertimeRules struct {
	BaseMultiplier  decimal.Decimal `yaml:"base_multiplier"`
	NightShiftBonus decimal.Decimal `yaml:"night_shift_bonus"`
	WeekendBonus    decimal.Decimal `yaml:"weekend_bonus"`
	MinMinutes      int             `yaml:"min_minutes"`
	MaxDailyMinutes int             `yaml:"max_daily_minutes"`
	MaxWeeklyHours  decimal.Decimal `yaml:"max_weekly_hours"`
	NightStartHour  int             `yaml:"night_start_hour"`
	NightEndHour    int             `yaml:"night_end_hour"`
}

type DeductionRules struct {
	TaxBrackets   []deduction.Bracket      `yaml:"tax_brackets"`
	Contributions []deduction.Contribution `yaml:"contributions"`
}

// DefaultRules parses the embedded rules file.
func DefaultRules() (Rules, error) {
	return ParseRules(defaultRules)
}

// MustDefaultRules is DefaultRules for tests and wiring code that cannot
// continue without rules.
func MustDefaultRules() Rules {
	r, err := DefaultRules()
	if err != nil {
		panic(err)
	}
	return r
}

// LoadRules reads rules from path, or the embedded defaults when path is empty.
// A non-empty timezone overrides the one in the file.
func LoadRules(path, timezone string) (Rules, error) {
	raw := defaultRules
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Rules{}, fmt.Errorf("read payroll rules: %w", err)
		}
		raw = b
	}

	r, err := ParseRules(raw)
	if err != nil {
		return Rules{}, err
	}
	if timezone != "" {
		r.Timezone = timezone
		if err := r.Schedule.resolve(timezone); err != nil {
			return Rules{}, err
		}
	}
	return r, nil
}

func ParseRules(raw []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return Rules{}, fmt.Errorf("unmarshal payroll rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r *Rules) Validate() error {
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
	if err := r.Schedule.resolve(r.Timezone); err != nil {
		return err
	}

	if r.Leave.AnnualDefaultDays < 0 || r.Leave.SickDefaultDays < 0 {
		return errors.New("leave default allocations must not be negative")
	}
	if r.Leave.MaxAdvanceDays < 0 || r.Leave.MaxBackdateDays < 0 || r.Leave.MaxCarryOverDays < 0 {
		return errors.New("leave windows must not be negative")
	}

	ot := r.Overtime
	if !ot.BaseMultiplier.IsPositive() {
		return errors.New("overtime base multiplier must be positive")
	}
	if ot.MinMinutes <= 0 || ot.MaxDailyMinutes < ot.MinMinutes {
		return errors.New("overtime minimum must be positive and not above the daily cap")
	}
	if !ot.MaxWeeklyHours.IsPositive() {
		return errors.New("overtime weekly cap must be positive")
	}
	if ot.NightStartHour < 0 || ot.NightStartHour > 23 || ot.NightEndHour < 0 || ot.NightEndHour > 23 {
		return errors.New("night shift hours must be within 0-23")
	}

	if err := deduction.ValidateBrackets(r.Deductions.TaxBrackets); err != nil {
		return fmt.Errorf("payroll rules: %w", err)
	}
	return nil
}

// Location is the timezone attendance and overtime dates are evaluated in.
func (r Rules) Location() *time.Location {
	return r.Schedule.Location()
}
