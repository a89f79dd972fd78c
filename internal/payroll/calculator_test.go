package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	payrollMock "go-payroll/internal/payroll/mock"
	"go-payroll/internal/referencedata"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type calcDeps struct {
	attendance *payrollMock.MockAttendanceHours
	overtime   *payrollMock.MockOvertimePay
	benefits   *payrollMock.MockBenefitSource
}

func newEngine(t *testing.T) *deduction.Engine {
	rules := config.MustDefaultRules().Deductions
	engine, err := deduction.NewEngine(rules.TaxBrackets, rules.Contributions)
	assert.NoError(t, err)
	return engine
}

func newCalculator(t *testing.T, ctrl *gomock.Controller) (*payroll.Calculator, calcDeps) {
	d := calcDeps{
		attendance: payrollMock.NewMockAttendanceHours(ctrl),
		overtime:   payrollMock.NewMockOvertimePay(ctrl),
		benefits:   payrollMock.NewMockBenefitSource(ctrl),
	}
	return payroll.NewCalculator(d.attendance, d.overtime, d.benefits, newEngine(t), time.UTC), d
}

var firstHalfOfMarch = payperiod.PayPeriod{
	ID:        uuid.New(),
	StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	EndDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	PayDate:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()

	t.Run("all earnings and deductions", func(t *testing.T) {
		calc, d := newCalculator(t, gomock.NewController(t))
		positionID := uuid.New()
		emp := employee.Employee{
			ID:          uuid.New(),
			PositionID:  &positionID,
			BasicSalary: dec("30000"),
			HourlyRate:  dec("200"),
		}
		monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		d.attendance.EXPECT().CompletedHours(ctx, emp.ID, firstHalfOfMarch.StartDate, firstHalfOfMarch.EndDate).Return(dec("80.00"), nil)
		d.overtime.EXPECT().ApprovedPay(ctx, emp.ID, emp.HourlyRate, monthStart, monthStart.AddDate(0, 1, 0)).Return(dec("900.00"), nil)
		d.benefits.EXPECT().BenefitsForPosition(ctx, positionID).Return([]referencedata.PositionBenefit{
			{Name: "Transport", Amount: dec("1500")},
			{Name: "Meal", Amount: dec("500")},
		}, nil)

		rec, err := calc.Calculate(ctx, emp, firstHalfOfMarch)

		assert.NoError(t, err)
		assert.Equal(t, emp.ID, rec.EmployeeID)
		assert.Equal(t, firstHalfOfMarch.ID, rec.PayPeriodID)
		assert.Equal(t, "15000.00", rec.BasicSalary.StringFixed(2))
		assert.Equal(t, "16000.00", rec.AttendanceEarnings.StringFixed(2))
		assert.Equal(t, "900.00", rec.OvertimePay.StringFixed(2))
		assert.Equal(t, "2000.00", rec.TotalBenefits.StringFixed(2))
		assert.Equal(t, "33900.00", rec.GrossIncome.StringFixed(2))
		assert.Equal(t, "675.00", rec.PensionContribution.StringFixed(2))
		assert.Equal(t, "375.00", rec.HealthContribution.StringFixed(2))
		assert.Equal(t, "100.00", rec.HousingContribution.StringFixed(2))
		assert.Equal(t, "2641.75", rec.WithholdingTax.StringFixed(2))
		assert.Equal(t, "3791.75", rec.TotalDeductions.StringFixed(2))
		assert.Equal(t, "30108.25", rec.NetSalary.StringFixed(2))
	})

	t.Run("basic only without a position", func(t *testing.T) {
		calc, d := newCalculator(t, gomock.NewController(t))
		emp := employee.Employee{ID: uuid.New(), BasicSalary: dec("20000"), HourlyRate: dec("100")}

		d.attendance.EXPECT().CompletedHours(ctx, emp.ID, gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
		d.overtime.EXPECT().ApprovedPay(ctx, emp.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)

		rec, err := calc.Calculate(ctx, emp, firstHalfOfMarch)

		assert.NoError(t, err)
		assert.Equal(t, "10000.00", rec.GrossIncome.StringFixed(2))
		assert.True(t, rec.WithholdingTax.IsZero())
		assert.Equal(t, "800.00", rec.TotalDeductions.StringFixed(2))
		assert.Equal(t, "9200.00", rec.NetSalary.StringFixed(2))
	})

	t.Run("net is gross minus deductions", func(t *testing.T) {
		calc, d := newCalculator(t, gomock.NewController(t))
		emp := employee.Employee{ID: uuid.New(), BasicSalary: dec("123456.78"), HourlyRate: dec("321.09")}

		d.attendance.EXPECT().CompletedHours(ctx, emp.ID, gomock.Any(), gomock.Any()).Return(dec("87.33"), nil)
		d.overtime.EXPECT().ApprovedPay(ctx, emp.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(dec("1234.56"), nil)

		rec, err := calc.Calculate(ctx, emp, firstHalfOfMarch)

		assert.NoError(t, err)
		assert.True(t, rec.GrossIncome.Sub(rec.TotalDeductions).Equal(rec.NetSalary))
		sum := rec.PensionContribution.Add(rec.HealthContribution).Add(rec.HousingContribution).Add(rec.WithholdingTax)
		assert.True(t, sum.Equal(rec.TotalDeductions))
	})

	t.Run("collaborator failure", func(t *testing.T) {
		calc, d := newCalculator(t, gomock.NewController(t))
		emp := employee.Employee{ID: uuid.New()}
		boom := errors.New("db down")

		d.attendance.EXPECT().CompletedHours(ctx, emp.ID, gomock.Any(), gomock.Any()).Return(decimal.Zero, boom)

		_, err := calc.Calculate(ctx, emp, firstHalfOfMarch)

		assert.ErrorIs(t, err, boom)
	})
}
