package handlers

import (
	"context"
	"fmt"
	"strconv"

	"recordbook/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext returns the request context tagged with the trace ID so
// record store log entries can be correlated with the request.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" {
		ctx = services.WithRequestID(ctx, traceID)
	}
	return ctx
}

// parseRecordKey reads the :id path parameter as a positive record key.
func parseRecordKey(c echo.Context) (uint, error) {
	raw := c.Param("id")
	key, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || key == 0 {
		return 0, fmt.Errorf("record id must be a positive integer, got %q", raw)
	}
	return uint(key), nil
}
