package workflowerrors

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
)

var (
	ErrInvalidWorkflowID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid workflow id",
		http.StatusBadRequest,
	)
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval workflow not found",
		http.StatusNotFound,
	)
	ErrWorkflowExists = apperror.New(
		apperror.CodeConflict,
		"an approval workflow already exists for this leave type",
		http.StatusConflict,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrInvalidMinDays = apperror.New(
		apperror.CodeInvalidInput,
		"minDaysForHR must be at least 1",
		http.StatusBadRequest,
	)
)
