package referencedataerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeCodeExists = apperror.New(
		apperror.CodeConflict,
		"Leave type code already exists",
		http.StatusConflict,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
	ErrInvalidBenefitAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Benefit amount must be a non-negative number",
		http.StatusBadRequest,
	)
)
