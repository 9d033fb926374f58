package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"recordbook/internal/errors"
	"recordbook/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by error code, route and HTTP status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders errors that escape the handlers in the
// standard envelope, counts them in api_errors_total and logs them.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, httpStatus := classifyError(err, traceID)

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(c.Request().Context(), logLevel, "request failed",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	route := c.Path()
	if route == "" {
		route = "unmatched"
	}
	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, route, strconv.Itoa(httpStatus)).Inc()

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(httpStatus)
	} else {
		sendErr = c.JSON(httpStatus, errorResponse)
	}
	if sendErr != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr.Error())
	}
}

// classifyError picks the envelope and status for an unhandled error.
func classifyError(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		return errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		), echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := validation.FieldErrors(validationErrs)
		pairs := make([][2]string, 0, len(fields))
		for _, f := range fields {
			pairs = append(pairs, [2]string{f.Field, f.Message})
		}
		return errors.NewValidationError(pairs, traceID), http.StatusBadRequest
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	case http.StatusGatewayTimeout:
		return errors.SystemRequestTimeout
	default:
		return errors.SystemUnexpectedError
	}
}
