package attendance

type TimeInResponse struct {
	ID             string `json:"id"`
	AttendanceDate string `json:"attendance_date"`
	TimeIn         string `json:"time_in"`
	IsLate         bool   `json:"is_late"`
	LateMinutes    int    `json:"late_minutes"`
	TardinessHours string `json:"tardiness_hours,omitempty"`
}

type TimeOutResponse struct {
	ID               string `json:"id"`
	AttendanceDate   string `json:"attendance_date"`
	TimeIn           string `json:"time_in"`
	TimeOut          string `json:"time_out"`
	WorkedHours      string `json:"worked_hours"`
	UndertimeMinutes int    `json:"undertime_minutes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         *string `json:"time_in,omitempty"`
	TimeOut        *string `json:"time_out,omitempty"`
	IsComplete     bool    `json:"is_complete"`
	WorkedHours    string  `json:"worked_hours"`
}

type TardinessResponse struct {
	ID             string  `json:"id"`
	AttendanceID   string  `json:"attendance_id"`
	AttendanceDate string  `json:"attendance_date"`
	Type           string  `json:"type"`
	Minutes        int     `json:"minutes"`
	Hours          string  `json:"hours"`
	Note           *string `json:"note,omitempty"`
}

type MonthlyStatisticsResponse struct {
	Month          string `json:"month"`
	TotalDays      int    `json:"total_days"`
	CompleteDays   int    `json:"complete_days"`
	IncompleteDays int    `json:"incomplete_days"`
	TotalHours     string `json:"total_hours"`
	WorkingDays    int    `json:"working_days"`
	AttendanceRate string `json:"attendance_rate"`
}

type StatisticsQuery struct {
	Month string `form:"month" binding:"required"`
}

type DateRangeFilter struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}
