package payroll

type ProcessPeriodRequest struct {
	PayPeriodID string `json:"pay_period_id" binding:"required,uuid"`
}

type ProcessEmployeeRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PayPeriodID string `json:"pay_period_id" binding:"required,uuid"`
}

type PeriodQuery struct {
	PayPeriodID string `form:"pay_period_id" binding:"required"`
}

type EmployeePeriodQuery struct {
	EmployeeID  string `form:"employee_id" binding:"required"`
	PayPeriodID string `form:"pay_period_id" binding:"required"`
}

type PayrollResponse struct {
	ID                  string `json:"id,omitempty"`
	EmployeeID          string `json:"employee_id"`
	PayPeriodID         string `json:"pay_period_id"`
	BasicSalary         string `json:"basic_salary"`
	AttendanceEarnings  string `json:"attendance_earnings"`
	OvertimePay         string `json:"overtime_pay"`
	TotalBenefits       string `json:"total_benefits"`
	GrossIncome         string `json:"gross_income"`
	PensionContribution string `json:"pension_contribution"`
	HealthContribution  string `json:"health_contribution"`
	HousingContribution string `json:"housing_contribution"`
	WithholdingTax      string `json:"withholding_tax"`
	TotalDeductions     string `json:"total_deductions"`
	NetSalary           string `json:"net_salary"`
	CreatedAt           string `json:"created_at,omitempty"`
}

type ProcessEmployeeResponse struct {
	AlreadyProcessed bool            `json:"already_processed"`
	Payroll          PayrollResponse `json:"payroll"`
}

type RunError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

// RunResult reports a batch over one pay period. Success is true only when no
// employee failed.
type RunResult struct {
	PayPeriodID string     `json:"pay_period_id"`
	Success     bool       `json:"success"`
	Message     string     `json:"message"`
	Processed   int        `json:"processed"`
	Skipped     int        `json:"skipped"`
	Failed      int        `json:"failed"`
	Errors      []RunError `json:"errors"`
}

type RunRequestedResponse struct {
	PayPeriodID string `json:"pay_period_id"`
	EventID     string `json:"event_id"`
}

type PeriodSummaryResponse struct {
	PayPeriodID     string `json:"pay_period_id"`
	Employees       int64  `json:"employees"`
	GrossIncome     string `json:"gross_income"`
	TotalDeductions string `json:"total_deductions"`
	NetSalary       string `json:"net_salary"`
}
