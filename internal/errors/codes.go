package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Record error codes (RECORD_*)
const (
	RecordNotFound  ErrorCode = "RECORD_001"
	RecordInvalidID ErrorCode = "RECORD_002"
	RecordConflict  ErrorCode = "RECORD_003"
)

// Store error codes (STORE_*)
const (
	StoreNotFound        ErrorCode = "STORE_001"
	StoreOpenFailed      ErrorCode = "STORE_002"
	StoreOperationFailed ErrorCode = "STORE_003"
	StoreNotOpen         ErrorCode = "STORE_004"
	StoreReadOnly        ErrorCode = "STORE_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestTimeout     ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_009"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Record errors
	RecordNotFound:  "Record not found",
	RecordInvalidID: "Invalid record ID",
	RecordConflict:  "Record key conflicts with an existing record",

	// Store errors
	StoreNotFound:        "Object store not found",
	StoreOpenFailed:      "Record database could not be opened",
	StoreOperationFailed: "Record store operation failed",
	StoreNotOpen:         "Record database is not open",
	StoreReadOnly:        "Object store is read-only for this operation",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestTimeout:     "The request timed out",
	SystemRouteNotFound:      "Resource not found",
	SystemMethodNotAllowed:   "Method not allowed",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
