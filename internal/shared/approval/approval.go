// Package approval holds the request lifecycle shared by leave and overtime:
// PENDING moves once to APPROVED or REJECTED and never again.
package approval

import (
	"net/http"
	"strings"

	"go-payroll/internal/shared/apperror"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// ActiveStatuses are the states that still block an overlapping request.
var ActiveStatuses = []string{StatusPending, StatusApproved}

var (
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeAlreadyProcessed,
		"Request has already been processed",
		http.StatusConflict,
	)
	ErrMissingReason = apperror.New(
		apperror.CodeMissingReason,
		"Notes are required when rejecting a request",
		http.StatusBadRequest,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"You cannot decide on your own request",
		http.StatusForbidden,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid approver ID",
		http.StatusBadRequest,
	)
)

type DecisionRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func IsFinal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// RejectionNotes trims notes and fails with ErrMissingReason when nothing is left.
func RejectionNotes(notes string) (string, error) {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return "", ErrMissingReason
	}
	return trimmed, nil
}

// OptionalNotes trims notes and returns nil for blank input.
func OptionalNotes(notes string) *string {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
