package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPayPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid pay period ID",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrEmployeeTerminated = apperror.New(
		apperror.CodeInvalidState,
		"Payroll cannot be processed for a terminated employee",
		http.StatusUnprocessableEntity,
	)
)
