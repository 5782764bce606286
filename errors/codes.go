package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Configuration errors. These are raised while credentials are being
// loaded and key material is being parsed, before any request is served.
const (
	// ErrCodeInvalidConfig indicates that scheme or credential
	// configuration is malformed and the registry cannot be built.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"

	// ErrCodeInvalidInput indicates a request or argument failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeMissingField indicates a required field was absent.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Authentication errors. These are surfaced per request.
const (
	// ErrCodeUnauthorized indicates missing or unusable credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// ErrCodeTokenExpired indicates the presented token is past its lifetime.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"

	// ErrCodeInvalidToken indicates the presented token failed verification.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// ErrCodeForbidden indicates the caller is authenticated but not allowed.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Throttling errors.
const (
	// ErrCodeRateLimited indicates the caller exceeded the request budget.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Internal errors.
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
