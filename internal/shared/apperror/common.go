package apperror

import "net/http"

// Sentinels shared by middleware and handlers. Module specific failures
// live in each module's errors package.
var (
	ErrForbidden = New(
		CodeForbidden,
		"Your role does not allow this action",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Something went wrong while processing the request",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Sign in to manage leave",
		http.StatusUnauthorized,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests, try again shortly",
		http.StatusTooManyRequests,
	)

	// ErrServiceUnavailable is returned by the health check while the
	// leave database cannot be reached.
	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"Leave service is unavailable",
		http.StatusServiceUnavailable,
	)
)
