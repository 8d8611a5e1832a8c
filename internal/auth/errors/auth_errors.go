package autherrors

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidClaims = apperror.New(
		apperror.CodeUnauthorized,
		"Token claims are incomplete",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Your role cannot reach this part of leave management",
		http.StatusForbidden,
	)
)
