package usererrors

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be employee, manager or admin",
		http.StatusBadRequest,
	)

	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrUserArchived = apperror.New(
		apperror.CodeInvalidState,
		"User is archived and can no longer be changed",
		http.StatusBadRequest,
	)

	ErrUserHasPendingLeaves = apperror.New(
		apperror.CodeInvalidState,
		"User has pending leave requests; cancel or resolve them first",
		http.StatusBadRequest,
	)

	ErrCannotArchiveSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot archive your own account",
		http.StatusBadRequest,
	)
)
