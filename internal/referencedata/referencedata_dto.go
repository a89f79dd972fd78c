package referencedata

type CreateLeaveTypeRequest struct {
	Code           string `json:"code" binding:"required,max=20"`
	Name           string `json:"name" binding:"required,max=80"`
	Category       string `json:"category" binding:"required,oneof=ANNUAL SICK OTHER"`
	MaxDaysPerYear int    `json:"max_days_per_year" binding:"min=0,max=366"`
}

type CreatePositionBenefitRequest struct {
	PositionID string `json:"position_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=80"`
	Amount     string `json:"amount" binding:"required"`
}

type LeaveTypeResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	MaxDaysPerYear int    `json:"max_days_per_year"`
}

type PositionBenefitResponse struct {
	ID         string `json:"id"`
	PositionID string `json:"position_id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
}
