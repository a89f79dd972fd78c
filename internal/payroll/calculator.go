package payroll

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/referencedata"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=calculator.go -destination=mock/calculator_mock.go -package=mock
type AttendanceHours interface {
	CompletedHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

type OvertimePay interface {
	ApprovedPay(ctx context.Context, employeeID uuid.UUID, hourlyRate decimal.Decimal, from, to time.Time) (decimal.Decimal, error)
}

type BenefitSource interface {
	BenefitsForPosition(ctx context.Context, positionID uuid.UUID) ([]referencedata.PositionBenefit, error)
}

// Calculator turns attendance, overtime and benefits into one payroll record.
// It reads only; persisting is the caller's job.
type Calculator struct {
	attendance AttendanceHours
	overtime   OvertimePay
	benefits   BenefitSource
	deductions *deduction.Engine
	location   *time.Location
}

func NewCalculator(attendance AttendanceHours, overtime OvertimePay, benefits BenefitSource, deductions *deduction.Engine, location *time.Location) *Calculator {
	if location == nil {
		location = time.UTC
	}
	return &Calculator{
		attendance: attendance,
		overtime:   overtime,
		benefits:   benefits,
		deductions: deductions,
		location:   location,
	}
}

func (c *Calculator) Calculate(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod) (*PayrollRecord, error) {
	basic := money.SemiMonthly(emp.BasicSalary)

	hours, err := c.attendance.CompletedHours(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("attendance hours: %w", err)
	}
	attendanceEarnings := money.Round2(hours.Mul(emp.HourlyRate))

	// overtime is taken for the whole calendar month the period starts in
	monthStart := time.Date(period.StartDate.Year(), period.StartDate.Month(), 1, 0, 0, 0, 0, c.location)
	overtimePay, err := c.overtime.ApprovedPay(ctx, emp.ID, emp.HourlyRate, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("overtime pay: %w", err)
	}

	benefits := decimal.Zero
	if emp.PositionID != nil {
		list, err := c.benefits.BenefitsForPosition(ctx, *emp.PositionID)
		if err != nil {
			return nil, fmt.Errorf("position benefits: %w", err)
		}
		for _, b := range list {
			benefits = benefits.Add(b.Amount)
		}
	}

	gross := money.Sum(basic, attendanceEarnings, overtimePay, benefits)
	breakdown := c.deductions.Compute(basic, gross)

	return &PayrollRecord{
		EmployeeID:          emp.ID,
		PayPeriodID:         period.ID,
		BasicSalary:         basic,
		AttendanceEarnings:  attendanceEarnings,
		OvertimePay:         overtimePay,
		TotalBenefits:       benefits,
		GrossIncome:         gross,
		PensionContribution: breakdown.Amount(deduction.Pension),
		HealthContribution:  breakdown.Amount(deduction.Health),
		HousingContribution: breakdown.Amount(deduction.Housing),
		WithholdingTax:      breakdown.Tax,
		TotalDeductions:     breakdown.Total,
		NetSalary:           gross.Sub(breakdown.Total),
	}, nil
}
