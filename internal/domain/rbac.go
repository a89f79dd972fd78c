package domain

// EnforceRequest is the shape both the rbac service and the authorization
// middleware speak, kept here so neither imports the other.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	Name        string   `json:"name"`
	Inherits    []string `json:"inherits,omitempty"`
	Permissions []string `json:"permissions"`
}
