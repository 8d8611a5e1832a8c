package leaveerrors

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must be on or after start date",
		http.StatusBadRequest,
	)
	ErrNoChargeableDays = apperror.New(
		apperror.CodeInvalidInput,
		"the requested range contains no chargeable days",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"status must be approved or rejected",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found or inactive",
		http.StatusNotFound,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeNotFound,
		"requester not found or archived",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"you already have a leave request overlapping with these dates",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"only pending leaves can be approved or rejected",
		http.StatusBadRequest,
	)
	ErrCancelNotPending = apperror.New(
		apperror.CodeInvalidState,
		"only pending leaves can be cancelled",
		http.StatusBadRequest,
	)
	ErrViewForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to view this leave",
		http.StatusForbidden,
	)
	ErrDepartmentScope = apperror.New(
		apperror.CodeForbidden,
		"you can only manage leaves from your department",
		http.StatusForbidden,
	)
	ErrReviewStageForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to review this leave at this stage",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only cancel your own leaves",
		http.StatusForbidden,
	)
)
