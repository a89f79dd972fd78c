package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Workflow and attendance outcomes
	CodeAlreadyProcessed    = "ALREADY_PROCESSED"
	CodeAlreadyMarked       = "ALREADY_MARKED"
	CodeNoTimeIn            = "NO_TIME_IN"
	CodeMissingReason       = "MISSING_REASON"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeOverlap             = "OVERLAP"
	CodeAttendanceRequired  = "ATTENDANCE_REQUIRED"
	CodeLimitExceeded       = "LIMIT_EXCEEDED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
