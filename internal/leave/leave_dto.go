package leave

type SubmitLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type ListLeavesFilter struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Status string `form:"status"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveTypeID     string  `json:"leave_type_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	SupervisorNotes *string `json:"supervisor_notes,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	// RemainingDays is the balance left after an approval, when one is tracked.
	RemainingDays *int `json:"remaining_days,omitempty"`
}
