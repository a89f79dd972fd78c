package payperioderrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found",
		http.StatusNotFound,
	)
	ErrInvalidPayPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid pay period ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidPayDate = apperror.New(
		apperror.CodeInvalidInput,
		"Pay date must not be before end date",
		http.StatusBadRequest,
	)
	ErrPayPeriodOverlap = apperror.New(
		apperror.CodeOverlap,
		"Pay period overlaps an existing period",
		http.StatusConflict,
	)
)
