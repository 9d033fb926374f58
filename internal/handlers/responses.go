package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"recordbook/internal/errors"
	"recordbook/internal/services"
	"recordbook/internal/storage"
	"recordbook/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors with a known error code (4xx responses)
//    - SendError(c, errors.RecordInvalidID, errors.WithDetails("..."))
//
// 2. SendValidationError - For field violations from the validator
//
// 3. SendServiceError - For anything returned by the record store. It maps
//    ValidationError, OpenError and StoreError onto API error codes and falls
//    back to SendSystemError.
//
// 4. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	if errorResponse.IsServerError() {
		slog.WarnContext(c.Request().Context(), "server error response",
			"error", errorResponse.String(),
			"path", c.Request().URL.Path,
		)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends field violations in reporting order
func SendValidationError(c echo.Context, fields []validation.FieldError) error {
	pairs := make([][2]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, [2]string{f.Field, f.Message})
	}
	errorResponse := errors.NewValidationError(pairs, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a record store error onto the API error envelope.
// Host error codes are passed on in the details so callers see the raw code.
func SendServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		return SendValidationError(c, validationErr.Fields)
	}

	var openErr *services.OpenError
	if stderrors.As(err, &openErr) {
		return SendError(c, errors.StoreOpenFailed, errors.WithDetails("host_code: "+openErr.Code))
	}

	var storeErr *services.StoreError
	if !stderrors.As(err, &storeErr) {
		return SendSystemError(c, err)
	}

	details := errors.WithDetails("host_code: " + storeErr.Code)
	switch storeErr.Code {
	case storage.CodeNotFound:
		if stderrors.Is(err, storage.ErrStoreNotFound) || stderrors.Is(err, storage.ErrStoreNotInTx) {
			return SendError(c, errors.StoreNotFound, details)
		}
		return SendError(c, errors.RecordNotFound, details)
	case storage.CodeInvalidState:
		return SendError(c, errors.StoreNotOpen, details)
	case storage.CodeReadOnly:
		return SendError(c, errors.StoreReadOnly, details)
	case storage.CodeConstraint:
		return SendError(c, errors.RecordConflict, details)
	case storage.CodeTimeout:
		return SendError(c, errors.SystemRequestTimeout, details)
	case storage.CodeData, storage.CodeAbort, storage.CodeInvalidAccess, storage.CodeVersion:
		return SendError(c, errors.StoreOperationFailed, details)
	default:
		traceID := getTraceID(c)
		errorResponse, internal := errors.WrapDatabaseError(err, traceID)
		errorResponse.Error.Details = []string{"host_code: " + storeErr.Code}
		slog.ErrorContext(c.Request().Context(), "record store failure",
			"trace_id", traceID,
			"operation", storeErr.Op,
			"store", storeErr.Store,
			"host_code", storeErr.Code,
			"error", internal,
		)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}
}
