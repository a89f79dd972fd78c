package overtime

type SubmitOvertimeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type ListOvertimeFilter struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Status string `form:"status"`
}

type OvertimeResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Hours           string  `json:"hours"`
	Reason          string  `json:"reason"`
	IsNightShift    bool    `json:"is_night_shift"`
	IsWeekend       bool    `json:"is_weekend"`
	Status          string  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	SupervisorNotes *string `json:"supervisor_notes,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	// Multiplier and Pay are filled on approval for display only.
	Multiplier *string `json:"multiplier,omitempty"`
	Pay        *string `json:"pay,omitempty"`
}
