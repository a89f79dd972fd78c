package attendanceerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyMarked = apperror.New(
		apperror.CodeAlreadyMarked,
		"Attendance is already marked for today",
		http.StatusConflict,
	)
	ErrNoTimeIn = apperror.New(
		apperror.CodeNoTimeIn,
		"No time-in recorded for today",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
)
