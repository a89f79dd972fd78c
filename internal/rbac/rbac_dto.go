package rbac

// CheckPermissionRequest asks whether the caller's own role grants resource:action.
type CheckPermissionRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
