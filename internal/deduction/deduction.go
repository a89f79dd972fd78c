// Package deduction computes statutory contributions and withholding tax from
// salary figures. Rates and brackets come from configuration.
package deduction

import (
	"errors"
	"fmt"

	"go-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

const (
	Pension = "pension"
	Health  = "health"
	Housing = "housing"
)

// Bracket covers [Min, Max). A nil Max means the bracket is open ended.
type Bracket struct {
	Min  decimal.Decimal  `yaml:"min"`
	Max  *decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal  `yaml:"rate"`
	Base decimal.Decimal  `yaml:"base"`
}

func (b Bracket) contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || amount.LessThan(*b.Max)
}

// Contribution is a percentage of basic salary, optionally capped.
type Contribution struct {
	Name string           `yaml:"name"`
	Rate decimal.Decimal  `yaml:"rate"`
	Cap  *decimal.Decimal `yaml:"cap"`
}

type Line struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Breakdown struct {
	Contributions []Line          `json:"contributions"`
	Tax           decimal.Decimal `json:"withholding_tax"`
	Total         decimal.Decimal `json:"total"`
}

// Amount returns the contribution with the given name, zero when absent.
func (b Breakdown) Amount(name string) decimal.Decimal {
	for _, l := range b.Contributions {
		if l.Name == name {
			return l.Amount
		}
	}
	return decimal.Zero
}

type Engine struct {
	brackets      []Bracket
	contributions []Contribution
}

func NewEngine(brackets []Bracket, contributions []Contribution) (*Engine, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return nil, err
	}
	for _, c := range contributions {
		if c.Name == "" {
			return nil, errors.New("contribution name is required")
		}
		if c.Rate.IsNegative() {
			return nil, fmt.Errorf("contribution %s: negative rate", c.Name)
		}
		if c.Cap != nil && c.Cap.IsNegative() {
			return nil, fmt.Errorf("contribution %s: negative cap", c.Name)
		}
	}

	return &Engine{
		brackets:      append([]Bracket(nil), brackets...),
		contributions: append([]Contribution(nil), contributions...),
	}, nil
}

// ValidateBrackets checks the table is ordered and covers [0, inf) with no gaps.
func ValidateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return errors.New("at least one tax bracket is required")
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first tax bracket must start at 0, got %s", brackets[0].Min)
	}

	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Base.IsNegative() {
			return fmt.Errorf("tax bracket %d: rate and base must not be negative", i)
		}

		last := i == len(brackets)-1
		if b.Max == nil {
			if !last {
				return fmt.Errorf("tax bracket %d: only the last bracket may be open ended", i)
			}
			continue
		}
		if last {
			return errors.New("last tax bracket must be open ended")
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("tax bracket %d: max must be greater than min", i)
		}
		if !b.Max.Equal(brackets[i+1].Min) {
			return fmt.Errorf("tax bracket %d: gap or overlap before next bracket (%s != %s)", i, b.Max, brackets[i+1].Min)
		}
	}
	return nil
}

// WithholdingTax applies the bracket gross falls into:
// (gross - bracket.Min) * bracket.Rate + bracket.Base.
func (e *Engine) WithholdingTax(gross decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	for _, b := range e.brackets {
		if !b.contains(gross) {
			continue
		}
		if b.Rate.IsZero() && b.Base.IsZero() {
			return decimal.Zero
		}
		return money.Round2(gross.Sub(b.Min).Mul(b.Rate).Add(b.Base))
	}
	return decimal.Zero
}

// StatutoryContributions computes each contribution on basic salary. Every line
// is rounded on its own before any summing.
func (e *Engine) StatutoryContributions(basic decimal.Decimal) []Line {
	lines := make([]Line, 0, len(e.contributions))
	for _, c := range e.contributions {
		amount := decimal.Zero
		if basic.IsPositive() {
			amount = money.Round2(basic.Mul(c.Rate))
			if c.Cap != nil && amount.GreaterThan(*c.Cap) {
				amount = *c.Cap
			}
		}
		lines = append(lines, Line{Name: c.Name, Amount: amount})
	}
	return lines
}

// Compute returns contributions on basic plus withholding tax on gross.
func (e *Engine) Compute(basic, gross decimal.Decimal) Breakdown {
	lines := e.StatutoryContributions(basic)
	tax := e.WithholdingTax(gross)

	total := tax
	for _, l := range lines {
		total = total.Add(l.Amount)
	}

	return Breakdown{
		Contributions: lines,
		Tax:           tax,
		Total:         total,
	}
}
