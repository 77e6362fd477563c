package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"VALIDATION_ERROR",
		"Valid location coordinates are required",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"VALIDATION_ERROR",
		"Invalid radius: must be between 0 and 50000 meters",
		http.StatusBadRequest,
	)

	ErrConfig = New(
		"CONFIG_ERROR",
		"Service is not configured",
		http.StatusInternalServerError,
	)

	ErrUpstream = New(
		"UPSTREAM_ERROR",
		"Upstream provider request failed",
		http.StatusInternalServerError,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrRateLimited = New(
		"RATE_LIMIT_EXCEEDED",
		"Rate limit exceeded",
		http.StatusTooManyRequests,
	)

	ErrDatabase = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
