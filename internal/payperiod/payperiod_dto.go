package payperiod

type CreatePayPeriodRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PayDate     string `json:"pay_date" binding:"required"`
	Description string `json:"description" binding:"max=120"`
}

type GenerateSemiMonthlyRequest struct {
	Year         int `json:"year" binding:"required,min=2000,max=2100"`
	Month        int `json:"month" binding:"required,min=1,max=12"`
	PayDelayDays int `json:"pay_delay_days" binding:"min=0,max=15"`
}

type ListPayPeriodsFilter struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type PayPeriodResponse struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PayDate     string `json:"pay_date"`
	Description string `json:"description"`
}
