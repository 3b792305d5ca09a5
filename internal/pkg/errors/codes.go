package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidFix = New(
		"INVALID_FIX",
		"Position fix has out-of-range coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Cluster radius must not be negative",
		http.StatusBadRequest,
	)

	ErrInvalidMinVessels = New(
		"INVALID_MIN_VESSELS",
		"Minimum vessel count must not be negative",
		http.StatusBadRequest,
	)

	ErrInvalidMinRisk = New(
		"INVALID_MIN_RISK",
		"Minimum risk score must be within [0, 1]",
		http.StatusBadRequest,
	)

	ErrInvalidTimeWindow = New(
		"INVALID_TIME_WINDOW",
		"Time window end must not precede its start",
		http.StatusBadRequest,
	)

	ErrInvalidRegion = New(
		"INVALID_REGION",
		"Invalid region bounds",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
