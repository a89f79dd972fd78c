package leavebalance

type BalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeCode string `json:"leave_type_code,omitempty"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	CarryOverDays int    `json:"carry_over_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type BalanceQuery struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

type InitializeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
}

type InitializeAllRequest struct {
	Year int `json:"year" binding:"required,min=2000,max=2100"`
}

type CarryOverRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	FromYear   int    `json:"from_year" binding:"required,min=2000,max=2100"`
}

type InitializeResult struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Created    int    `json:"created"`
	Existing   int    `json:"existing"`
}

type InitializeAllResult struct {
	Year      int      `json:"year"`
	Employees int      `json:"employees"`
	Created   int      `json:"created"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

type CarryOverResult struct {
	EmployeeID string            `json:"employee_id"`
	ToYear     int               `json:"to_year"`
	Balances   []BalanceResponse `json:"balances"`
}
