package balanceerrors

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
)

var (
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"insufficient leave balance",
		http.StatusConflict,
	)
	ErrBalanceNotAllocated = apperror.New(
		apperror.CodeConflict,
		"no leave balance is allocated for this leave type and year",
		http.StatusConflict,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"balance not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid id",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"balance amounts must not be negative",
		http.StatusBadRequest,
	)
)
