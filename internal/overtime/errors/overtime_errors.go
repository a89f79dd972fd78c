package overtimeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidOvertimeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid overtime request ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time format, use RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"End time must be after start time",
		http.StatusBadRequest,
	)
	ErrDurationTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Overtime is shorter than the minimum duration",
		http.StatusBadRequest,
	)
	ErrDailyLimitExceeded = apperror.New(
		apperror.CodeLimitExceeded,
		"Overtime exceeds the daily limit",
		http.StatusUnprocessableEntity,
	)
	ErrWeeklyLimitExceeded = apperror.New(
		apperror.CodeLimitExceeded,
		"Overtime exceeds the weekly limit",
		http.StatusUnprocessableEntity,
	)
	ErrAttendanceRequired = apperror.New(
		apperror.CodeAttendanceRequired,
		"A complete attendance record is required for the overtime date",
		http.StatusUnprocessableEntity,
	)
	ErrOvertimeOverlap = apperror.New(
		apperror.CodeOverlap,
		"Overtime overlaps an existing pending or approved request",
		http.StatusConflict,
	)
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Overtime request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid overtime status",
		http.StatusBadRequest,
	)
)
