package deduction_test

import (
	"testing"

	"go-payroll/internal/deduction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testBrackets() []deduction.Bracket {
	return []deduction.Bracket{
		{Min: dec("0"), Max: decPtr("20833"), Rate: dec("0"), Base: dec("0")},
		{Min: dec("20833"), Max: decPtr("33333"), Rate: dec("0.20"), Base: dec("0")},
		{Min: dec("33333"), Max: decPtr("66667"), Rate: dec("0.25"), Base: dec("2500")},
		{Min: dec("66667"), Max: decPtr("166667"), Rate: dec("0.30"), Base: dec("10833")},
		{Min: dec("166667"), Max: decPtr("666667"), Rate: dec("0.32"), Base: dec("40833.33")},
		{Min: dec("666667"), Rate: dec("0.35"), Base: dec("200833.33")},
	}
}

func testContributions() []deduction.Contribution {
	return []deduction.Contribution{
		{Name: deduction.Pension, Rate: dec("0.045")},
		{Name: deduction.Health, Rate: dec("0.025")},
		{Name: deduction.Housing, Rate: dec("0.02"), Cap: decPtr("100")},
	}
}

func newEngine(t *testing.T) *deduction.Engine {
	t.Helper()
	e, err := deduction.NewEngine(testBrackets(), testContributions())
	assert.NoError(t, err)
	return e
}

func TestEngine_WithholdingTax(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name  string
		gross string
		want  string
	}{
		{name: "zero gross", gross: "0", want: "0.00"},
		{name: "negative gross", gross: "-10", want: "0.00"},
		{name: "just below first taxable floor", gross: "20832.99", want: "0.00"},
		{name: "exactly at first taxable floor", gross: "20833", want: "0.00"},
		{name: "inside second bracket", gross: "25000", want: "833.40"},
		{name: "just below third floor", gross: "33332.99", want: "2500.00"},
		{name: "exactly at third floor uses third bracket", gross: "33333", want: "2500.00"},
		{name: "inside third bracket", gross: "50000", want: "6666.75"},
		{name: "inside fourth bracket", gross: "100000", want: "20832.90"},
		{name: "exactly at fifth floor", gross: "166667", want: "40833.33"},
		{name: "open ended bracket", gross: "700000", want: "212499.88"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.WithholdingTax(dec(tt.gross)).StringFixed(2))
		})
	}
}

func TestEngine_WithholdingTax_Deterministic(t *testing.T) {
	e := newEngine(t)
	first := e.WithholdingTax(dec("66667"))
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(e.WithholdingTax(dec("66667"))))
	}
	assert.Equal(t, "10833.00", first.StringFixed(2))
}

func TestEngine_StatutoryContributions(t *testing.T) {
	e := newEngine(t)

	t.Run("housing is capped", func(t *testing.T) {
		lines := e.StatutoryContributions(dec("15000"))

		assert.Len(t, lines, 3)
		assert.Equal(t, "675.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, "375.00", lines[1].Amount.StringFixed(2))
		assert.Equal(t, "100.00", lines[2].Amount.StringFixed(2))
	})

	t.Run("each line rounds independently", func(t *testing.T) {
		lines := e.StatutoryContributions(dec("3333.33"))

		assert.Equal(t, "150.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, "83.33", lines[1].Amount.StringFixed(2))
		assert.Equal(t, "66.67", lines[2].Amount.StringFixed(2))
	})

	t.Run("zero basic yields zero lines", func(t *testing.T) {
		for _, l := range e.StatutoryContributions(decimal.Zero) {
			assert.True(t, l.Amount.IsZero(), l.Name)
		}
	})
}

func TestEngine_Compute(t *testing.T) {
	e := newEngine(t)

	b := e.Compute(dec("15000"), dec("25000"))

	assert.Equal(t, "833.40", b.Tax.StringFixed(2))
	assert.Equal(t, "675.00", b.Amount(deduction.Pension).StringFixed(2))
	assert.Equal(t, "375.00", b.Amount(deduction.Health).StringFixed(2))
	assert.Equal(t, "100.00", b.Amount(deduction.Housing).StringFixed(2))
	assert.Equal(t, "1983.40", b.Total.StringFixed(2))
	assert.True(t, b.Amount("unknown").IsZero())
}

func TestValidateBrackets(t *testing.T) {
	assert.NoError(t, deduction.ValidateBrackets(testBrackets()))

	t.Run("empty", func(t *testing.T) {
		assert.Error(t, deduction.ValidateBrackets(nil))
	})

	t.Run("does not start at zero", func(t *testing.T) {
		b := testBrackets()
		b[0].Min = dec("1")
		assert.Error(t, deduction.ValidateBrackets(b))
	})

	t.Run("gap between brackets", func(t *testing.T) {
		b := testBrackets()
		b[1].Max = decPtr("33000")
		assert.Error(t, deduction.ValidateBrackets(b))
	})

	t.Run("closed last bracket", func(t *testing.T) {
		b := testBrackets()
		b[5].Max = decPtr("1000000")
		assert.Error(t, deduction.ValidateBrackets(b))
	})

	t.Run("open bracket in the middle", func(t *testing.T) {
		b := testBrackets()
		b[2].Max = nil
		assert.Error(t, deduction.ValidateBrackets(b))
	})
}

func TestNewEngine_RejectsBadContribution(t *testing.T) {
	_, err := deduction.NewEngine(testBrackets(), []deduction.Contribution{{Name: "", Rate: dec("0.01")}})
	assert.Error(t, err)

	_, err = deduction.NewEngine(testBrackets(), []deduction.Contribution{{Name: "x", Rate: dec("-0.01")}})
	assert.Error(t, err)
}
