package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"required,max=32"`
	FullName       string  `json:"full_name" binding:"required"`
	DepartmentID   *string `json:"department_id" binding:"omitempty,uuid"`
	PositionID     *string `json:"position_id" binding:"omitempty,uuid"`
	SupervisorID   *string `json:"supervisor_id" binding:"omitempty,uuid"`
	BasicSalary    string  `json:"basic_salary" binding:"required"`
	HourlyRate     string  `json:"hourly_rate" binding:"required"`
}

type UpdateSalaryRequest struct {
	BasicSalary   string `json:"basic_salary" binding:"required"`
	HourlyRate    string `json:"hourly_rate" binding:"required"`
	EffectiveDate string `json:"effective_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE ON_LEAVE TERMINATED"`
}

type ListEmployeesFilter struct {
	Status       string `form:"status"`
	DepartmentID string `form:"department_id"`
	SupervisorID string `form:"supervisor_id"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	DepartmentID   *string `json:"department_id,omitempty"`
	PositionID     *string `json:"position_id,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	BasicSalary    string  `json:"basic_salary"`
	HourlyRate     string  `json:"hourly_rate"`
	Status         string  `json:"status"`
}

type SalaryChangeResponse struct {
	ID             string  `json:"id"`
	OldBasicSalary string  `json:"old_basic_salary"`
	NewBasicSalary string  `json:"new_basic_salary"`
	OldHourlyRate  string  `json:"old_hourly_rate"`
	NewHourlyRate  string  `json:"new_hourly_rate"`
	EffectiveDate  string  `json:"effective_date"`
	ChangedBy      *string `json:"changed_by,omitempty"`
}
